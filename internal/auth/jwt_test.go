package auth

import "testing"

var testSecret = []byte("test_secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "andres@test.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	email, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if email != "andres@test.com" {
		t.Errorf("email claim = %q, want andres@test.com", email)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "andres@test.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken([]byte("other_secret"), token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Error("garbage token was accepted")
	}
	if _, err := ParseToken(testSecret, ""); err == nil {
		t.Error("empty token was accepted")
	}
}
