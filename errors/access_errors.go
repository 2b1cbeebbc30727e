// errors/access_errors.go
package errors

import "errors"

var (
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleConflict    = errors.New("role conflict")
	ErrInvalidRoleData = errors.New("invalid role data")
	ErrRoleInUse       = errors.New("role is in use")

	ErrInvalidClaimData = errors.New("invalid claim data")

	// ErrAccessDenied is the Denied outcome of an authorization decision.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidToken means an obfuscated identifier failed to decode or authenticate.
	ErrInvalidToken = errors.New("invalid token")
)
