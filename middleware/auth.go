// middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/db"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

const sessionContextKey = "session"

// SessionValidator resolves the current principal of a session's user.
type SessionValidator interface {
	ValidateSession(ctx context.Context, session *security.TokenClaims) (security.Principal, error)
}

// Authenticate requires a valid, unrevoked session token in the
// Authorization header. The principal stored on the request is the one
// sessions reports now, not the one captured at sign-in.
func Authenticate(tokens *security.TokenProvider, sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			logger.Warn("No bearer token provided", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.ParseSession(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		revoked, err := db.IsSessionRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("Session revocation check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session check failed"})
			return
		}
		if revoked {
			logger.Warn("Revoked session used", zap.String("userID", claims.Subject))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		principal, err := sessions.ValidateSession(c.Request.Context(), claims)
		if err != nil {
			if errors.Is(err, echo_errors.ErrUnauthorized) || errors.Is(err, echo_errors.ErrSessionRevoked) {
				logger.Warn("Stale session used", zap.String("userID", claims.Subject), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Session validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session check failed"})
			return
		}

		c.Set(sessionContextKey, claims)
		util.SetPrincipal(c, principal)
		c.Next()
	}
}

// SessionFromContext returns the session token claims set by Authenticate.
func SessionFromContext(c *gin.Context) (*security.TokenClaims, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*security.TokenClaims)
	return claims, ok
}

// RequireRole lets only principals holding role through.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := util.GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !principal.IsInRole(role) {
			logger.Warn("User does not have the required role",
				zap.String("userID", principal.ID),
				zap.String("role", role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireDeleteRoleClaim guards role deletion with the Delete Role claim.
func RequireDeleteRoleClaim() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := util.GetPrincipalFromContext(c)
		if !ok || !security.CanDeleteRoles(principal) {
			logger.Warn("Role deletion denied", zap.String("userID", principal.ID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
