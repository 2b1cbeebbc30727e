// errors/account_errors.go
package errors

import "errors"

var (
	ErrInvalidAccountData    = errors.New("invalid account data")
	ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
	ErrPasswordMismatch      = errors.New("password and confirmation password do not match")
	ErrWeakPassword          = errors.New("password does not meet requirements")
	ErrInvalidCredentials    = errors.New("login attempt failed")
	ErrEmailNotConfirmed     = errors.New("email not confirmed yet")
	ErrPasswordNotSet        = errors.New("user has no password")
	ErrPasswordAlreadySet    = errors.New("user already has a password")
	ErrExternalLoginFailed   = errors.New("external login failed")
	ErrSessionRevoked        = errors.New("session revoked")
)
