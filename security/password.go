// security/password.go
package security

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

const MinPasswordLength = 6

// ValidatePassword enforces length, digit, lower-case and upper-case rules.
// Non-alphanumeric characters are allowed but not required.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return echo_errors.ErrWeakPassword
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper {
		return echo_errors.ErrWeakPassword
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a candidate password. An empty
// hash never matches.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
