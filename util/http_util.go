// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/security"
)

// PrincipalContextKey is where the authentication middleware stores the
// signed-in security.Principal.
const PrincipalContextKey = "principal"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

func GetUserIDFromContext(c *gin.Context) string {
	return c.GetString(audit.ActorContextKey)
}

// GetPrincipalFromContext returns the signed-in principal, if any.
func GetPrincipalFromContext(c *gin.Context) (security.Principal, bool) {
	v, exists := c.Get(PrincipalContextKey)
	if !exists {
		return security.Principal{}, false
	}
	p, ok := v.(security.Principal)
	return p, ok
}

// SetPrincipal stores p on the request for handlers, and its id on the
// request context for the audit log.
func SetPrincipal(c *gin.Context, p security.Principal) {
	c.Set(PrincipalContextKey, p)
	c.Set(audit.ActorContextKey, p.ID)
	c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), p.ID))
}
