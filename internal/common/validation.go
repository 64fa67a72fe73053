package common

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// NormalizeUsername applies the store's case-normalization before any
// lookup or write, so uniqueness is case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateUsername(username string) error {
	username = NormalizeUsername(username)
	if len(username) < 3 || len(username) > 50 {
		return NewApiError(KindInvalidInput, "username must be between 3 and 50 characters")
	}
	if !usernameRegex.MatchString(username) {
		return NewApiError(KindInvalidInput, "username can only contain lowercase letters, numbers and underscores")
	}
	return nil
}

func ValidateEmail(email string) error {
	email = NormalizeEmail(email)
	if !emailRegex.MatchString(email) {
		return NewApiError(KindInvalidInput, "invalid email format")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return NewApiError(KindInvalidInput, "password must be at least 6 characters long")
	}
	if len(password) > 100 {
		return NewApiError(KindInvalidInput, "password is too long")
	}
	return nil
}

// RequireFields checks required string fields after trimming, collecting
// every missing one into a single InvalidInput error.
func RequireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	err := NewApiError(KindInvalidInput, "missing required fields")
	for _, name := range missing {
		err.WithField(name, "required")
	}
	return err
}
