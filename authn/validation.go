package authn

import (
	"fmt"
	"strings"
)

// DefaultMinPasswordLength matches the signup policy of the web form. It is
// a soft policy knob, not an architectural constraint; override it with
// ServiceConfig.MinPasswordLength.
const DefaultMinPasswordLength = 6

// ValidateEmail checks that an email is non-empty and syntactically
// plausible: it must contain "@" with a non-empty local part and a domain
// segment containing a dot. This is a form-level sanity check, not RFC 5322.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: invalid email domain", ErrValidation)
	}

	return nil
}

// ValidatePassword enforces the minimum length policy.
func ValidatePassword(password string, minLength int) error {
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	if len(password) < minLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minLength)
	}
	return nil
}
