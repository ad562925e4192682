// Package validation holds the field-level input rules for the identity
// domain. Each check is a pure function: it inspects a raw string and
// returns a ValidationError naming the first violated rule, or nil.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "userperm/internal/domain/errors"
)

// emailPattern accepts "local@domain.tld": one non-whitespace, non-@ run,
// an @, another run, a dot, a final run. Multi-label domains beyond the one
// dot are not validated further.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateName checks the display-name rules.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domainerrors.NewValidationError("Name is required.")
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return domainerrors.NewValidationError("Name must have at least 2 characters.")
	}

	return nil
}

// ValidateEmail checks the email shape rules.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domainerrors.NewValidationError("Email is required.")
	}
	if !emailPattern.MatchString(email) {
		return domainerrors.NewValidationError("Invalid email format.")
	}

	return nil
}

// ValidatePassword checks the password rules. Length counts the raw value;
// surrounding whitespace is not stripped.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerrors.NewValidationError("Password is required.")
	}
	if utf8.RuneCountInString(password) < 6 {
		return domainerrors.NewValidationError("Password must be at least 6 characters.")
	}

	return nil
}
