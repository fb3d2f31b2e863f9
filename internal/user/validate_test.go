package user

import "testing"

func validRegister() RegisterRequest {
	return RegisterRequest{
		Name:      "Andres",
		Email:     "andres@test.com",
		Password:  "123456",
		Password2: "123456",
	}
}

func TestValidateRegisterOK(t *testing.T) {
	if errs := ValidateRegister(validRegister()); len(errs) != 0 {
		t.Errorf("valid request rejected: %v", errs)
	}
}

func TestValidateRegister(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
		want   string
	}{
		{"empty name", func(r *RegisterRequest) { r.Name = "  " }, "Name is Required"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "Please include a valid email"},
		{"empty email", func(r *RegisterRequest) { r.Email = "" }, "Please include a valid email"},
		{"short password", func(r *RegisterRequest) { r.Password = "12345" }, "Please enter a password with 6 or more characters"},
		{"short password2", func(r *RegisterRequest) { r.Password2 = "" }, "Please enter a password with 6 or more characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)
			errs := ValidateRegister(req)
			if len(errs) == 0 {
				t.Fatal("expected validation error, got none")
			}
			found := false
			for _, e := range errs {
				if e == tc.want {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %v, want to contain %q", errs, tc.want)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin(LoginRequest{Email: "andres@test.com", Password: "123456"}); len(errs) != 0 {
		t.Errorf("valid login rejected: %v", errs)
	}
	if errs := ValidateLogin(LoginRequest{Email: "nope", Password: "123456"}); len(errs) == 0 {
		t.Error("bad email accepted")
	}
	if errs := ValidateLogin(LoginRequest{Email: "andres@test.com", Password: "123"}); len(errs) == 0 {
		t.Error("short password accepted")
	}
}
