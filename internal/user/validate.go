package user

import (
	"net/mail"
	"strings"
)

const minPasswordLen = 6

// ValidateRegister returns the list of validation messages for a
// registration request; empty means valid.
func ValidateRegister(req RegisterRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Name is Required")
	}
	if !validEmail(req.Email) {
		errs = append(errs, "Please include a valid email")
	}
	if len(req.Password) < minPasswordLen {
		errs = append(errs, "Please enter a password with 6 or more characters")
	}
	if len(req.Password2) < minPasswordLen {
		errs = append(errs, "Please enter a password with 6 or more characters")
	}

	return errs
}

// ValidateLogin returns the list of validation messages for a login request.
func ValidateLogin(req LoginRequest) []string {
	var errs []string

	if !validEmail(req.Email) {
		errs = append(errs, "Please include a valid email.")
	}
	if len(req.Password) < minPasswordLen {
		errs = append(errs, "Please enter a valid password.")
	}

	return errs
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
