// controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

var (
	notFoundErrors = []error{
		echo_errors.ErrEmployeeNotFound,
		echo_errors.ErrUserNotFound,
		echo_errors.ErrRoleNotFound,
	}
	conflictErrors = []error{
		echo_errors.ErrUserConflict,
		echo_errors.ErrRoleConflict,
		echo_errors.ErrRoleInUse,
		echo_errors.ErrPasswordAlreadySet,
	}
	badRequestErrors = []error{
		echo_errors.ErrInvalidEmployeeData,
		echo_errors.ErrInvalidUserData,
		echo_errors.ErrInvalidRoleData,
		echo_errors.ErrInvalidClaimData,
		echo_errors.ErrInvalidAccountData,
		echo_errors.ErrPasswordMismatch,
		echo_errors.ErrWeakPassword,
		echo_errors.ErrEmailDomainNotAllowed,
		echo_errors.ErrPasswordNotSet,
		echo_errors.ErrInvalidToken,
		echo_errors.ErrInvalidPagination,
		echo_errors.ErrPhotoUpload,
	}
	unauthorizedErrors = []error{
		echo_errors.ErrInvalidCredentials,
		echo_errors.ErrEmailNotConfirmed,
		echo_errors.ErrExternalLoginFailed,
		echo_errors.ErrUnauthorized,
		echo_errors.ErrSessionRevoked,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondWithServiceError maps a service error onto its HTTP status. Client
// errors carry the error text; anything else answers with fallback.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	var status int
	switch {
	case errors.Is(err, echo_errors.ErrAccessDenied):
		status = http.StatusForbidden
	case isAny(err, notFoundErrors):
		status = http.StatusNotFound
	case isAny(err, conflictErrors):
		status = http.StatusConflict
	case isAny(err, badRequestErrors):
		status = http.StatusBadRequest
	case isAny(err, unauthorizedErrors):
		status = http.StatusUnauthorized
	case errors.Is(err, echo_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		return
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
		return
	}
	util.RespondWithError(c, status, err.Error(), err)
}
