package identity

import (
	"net/mail"
	"strings"

	dErrors "coursebay/pkg/domain-errors"
)

const passwordSymbols = "!@#$%^&*"

// validatePassword enforces the boundary password policy: 8-18 characters
// with at least one lowercase, one uppercase, one digit, and one symbol from
// the fixed set.
func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 18 {
		return dErrors.New(dErrors.CodeValidation, "password must be 8-18 characters")
	}
	var lower, upper, digit, symbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, c):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return dErrors.New(dErrors.CodeValidation,
			"password must contain a lowercase, an uppercase, a digit, and one of "+passwordSymbols)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if len(email) > 50 {
		return dErrors.New(dErrors.CodeValidation, "email must be at most 50 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	return nil
}

// SignupRequest is the body for POST /admin/signup and POST /user/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes and validates the signup payload.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SignupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if len(r.Name) < 2 || len(r.Name) > 30 {
		return dErrors.New(dErrors.CodeValidation, "name must be 2-30 characters")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}

// SigninRequest is the body for POST /admin/signin and POST /user/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes and validates the signin payload. The password policy
// is re-applied so a request that could never have signed up fails fast
// without a store lookup.
func (r *SigninRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}
