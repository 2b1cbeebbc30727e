package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	"github.com/dev-mohitbeniwal/employee-management/config"
	"github.com/dev-mohitbeniwal/employee-management/controller"
	"github.com/dev-mohitbeniwal/employee-management/dao"
	"github.com/dev-mohitbeniwal/employee-management/db"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/router"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/service"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize the relational store. The memory driver only serves
	// employees; identity data still needs a database, so it falls back to
	// an in-memory sqlite instance.
	driver := config.GetString("database.driver")
	var employeeRepo dao.EmployeeRepository
	dsn := config.GetString("database.dsn")
	if driver == db.DriverMemory {
		logger.Warn("Using the in-memory employee repository; data is lost on restart")
		employeeRepo = dao.NewMemoryEmployeeDAO()
		driver, dsn = "sqlite", ":memory:"
	}
	gdb, err := db.Open(driver, dsn)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close(gdb)
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Audit sink
	var auditRepository audit.Repository = audit.NoopRepository{}
	if esURL := config.GetString("elasticsearch.url"); esURL != "" {
		esRepository, err := audit.NewElasticsearchRepository(esURL)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		auditRepository = esRepository
	} else {
		logger.Warn("Elasticsearch URL not configured; audit entries are discarded")
	}
	auditService := audit.NewService(auditRepository)

	// Key material
	key, generated, err := security.ParseKey(config.GetString("security.dataProtectionKey"))
	if err != nil {
		logger.Fatal("Invalid data protection key", zap.Error(err))
	}
	if generated {
		logger.Warn("No data protection key configured; employee links will not survive a restart")
	}
	obfuscator, err := security.NewIDObfuscator(key)
	if err != nil {
		logger.Fatal("Failed to initialize id obfuscator", zap.Error(err))
	}

	secret := []byte(config.GetString("auth.jwtSecret"))
	if len(secret) == 0 {
		logger.Warn("No JWT secret configured; sessions will not survive a restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			logger.Fatal("Failed to generate JWT secret", zap.Error(err))
		}
	}
	externalSecret := []byte(config.GetString("auth.externalLoginSecret"))
	if len(externalSecret) == 0 {
		logger.Warn("No external login secret configured; external login is disabled")
	}
	tokens, err := security.NewTokenProvider(secret, security.TokenOptions{
		SessionTTL:           config.GetDuration("auth.sessionTTL"),
		EmailConfirmationTTL: config.GetDuration("tokens.emailConfirmationTTL"),
		PasswordResetTTL:     config.GetDuration("tokens.passwordResetTTL"),
		ExternalLoginSecret:  externalSecret,
		ExternalLoginTTL:     config.GetDuration("auth.externalLoginTTL"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize token provider", zap.Error(err))
	}

	// Initialize services
	services, err := service.InitializeServices(service.Dependencies{
		DB:              gdb,
		EmployeeRepo:    employeeRepo,
		AuditService:    auditService,
		Obfuscator:      obfuscator,
		Tokens:          tokens,
		ClaimsStore:     security.NewClaimsStore(config.GetStringSlice("claims.catalog")),
		ValidationUtil:  util.NewValidationUtil(config.GetString("account.allowedEmailDomain")),
		CacheService:    util.NewCacheService(),
		NotificationSvc: util.NewNotificationService(),
		EventBus:        eventBus,
		Photos:          util.NewPhotoStore(config.GetString("uploads.dir")),
		PublicURL:       config.GetString("server.publicURL"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	controllers := controller.InitializeControllers(services, tokens)
	r := router.SetupRouter(controllers, tokens, services.Account, router.Options{
		TrustedProxies:    config.GetStringSlice("server.trustedProxies"),
		RateLimitRequests: config.GetInt("ratelimit.requests"),
		RateLimitDuration: config.GetDuration("ratelimit.window"),
	})

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: r,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Drain(shutdownCtx); err != nil {
		logger.Warn("Event handlers did not finish", zap.Error(err))
	}

	logger.Info("Server exiting")
}
