// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/controller"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/middleware"
	"github.com/dev-mohitbeniwal/employee-management/security"
)

// Options tunes the engine built by SetupRouter.
type Options struct {
	// TrustedProxies lists the proxy addresses or CIDRs whose
	// X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitDuration time.Duration
}

func SetupRouter(
	controllers *controller.Controllers,
	tokens *security.TokenProvider,
	sessions middleware.SessionValidator,
	opts Options,
) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, trusting none", zap.Error(err), zap.Strings("trustedProxies", opts.TrustedProxies))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitDuration))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	auth := middleware.Authenticate(tokens, sessions)

	controllers.Employee.RegisterRoutes(api, auth)
	controllers.Account.RegisterRoutes(api, auth)
	controllers.Administration.RegisterRoutes(api, auth)

	return router
}
