package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "123456" {
		t.Fatal("stored hash equals the plaintext password")
	}

	if !CheckPassword("123456", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("1234567", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", hash) {
		t.Error("empty password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}
