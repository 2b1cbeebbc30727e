// util/validation_util.go

package util

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
)

type ValidationUtil struct {
	allowedEmailDomain string
}

// NewValidationUtil returns a validator. An empty allowedEmailDomain accepts
// registrations from any domain.
func NewValidationUtil(allowedEmailDomain string) *ValidationUtil {
	return &ValidationUtil{allowedEmailDomain: allowedEmailDomain}
}

func (v *ValidationUtil) ValidateEmployee(employee model.Employee) error {
	if strings.TrimSpace(employee.Name) == "" {
		return fmt.Errorf("%w: employee name cannot be empty", echo_errors.ErrInvalidEmployeeData)
	}
	if utf8.RuneCountInString(employee.Name) > 50 {
		return fmt.Errorf("%w: name cannot exceed 50 characters", echo_errors.ErrInvalidEmployeeData)
	}
	if _, err := mail.ParseAddress(employee.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", echo_errors.ErrInvalidEmployeeData)
	}
	if !employee.Department.Valid() {
		return fmt.Errorf("%w: unknown department %q", echo_errors.ErrInvalidEmployeeData, employee.Department)
	}
	return nil
}

// ValidateEmailDomain checks the domain part of email against the configured
// domain, ignoring case.
func (v *ValidationUtil) ValidateEmailDomain(email string) error {
	if v.allowedEmailDomain == "" {
		return nil
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.EqualFold(email[at+1:], v.allowedEmailDomain) {
		return fmt.Errorf("%w: domain must be %s", echo_errors.ErrEmailDomainNotAllowed, v.allowedEmailDomain)
	}
	return nil
}

func (v *ValidationUtil) ValidateRegistration(req model.RegisterRequest) error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", echo_errors.ErrInvalidAccountData)
	}
	if err := v.ValidateEmailDomain(req.Email); err != nil {
		return err
	}
	return v.ValidateNewPassword(req.Password, req.ConfirmPassword)
}

// ValidateNewPassword checks the password rules and the confirmation field.
func (v *ValidationUtil) ValidateNewPassword(password, confirmation string) error {
	if password != confirmation {
		return echo_errors.ErrPasswordMismatch
	}
	return security.ValidatePassword(password)
}

func (v *ValidationUtil) ValidateRoleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: role name cannot be empty", echo_errors.ErrInvalidRoleData)
	}
	return nil
}

func (v *ValidationUtil) ValidateUserEdit(req model.EditUserRequest) error {
	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: user name cannot be empty", echo_errors.ErrInvalidUserData)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", echo_errors.ErrInvalidUserData)
	}
	return nil
}

// IsLocalURL reports whether u is a path on this host, so it can be used as
// a redirect target.
func IsLocalURL(u string) bool {
	if u == "" || u[0] != '/' {
		return false
	}
	if len(u) > 1 && (u[1] == '/' || u[1] == '\\') {
		return false
	}
	return true
}
