package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardapp "github.com/talentflow/backend/internal/application/dashboard"
	deploymentapp "github.com/talentflow/backend/internal/application/deployment"
	identityapp "github.com/talentflow/backend/internal/application/identity"
	pipelineapp "github.com/talentflow/backend/internal/application/pipeline"
	registryapp "github.com/talentflow/backend/internal/application/registry"
	"github.com/talentflow/backend/internal/domain/shared"
	"github.com/talentflow/backend/internal/infrastructure/auth"
	"github.com/talentflow/backend/internal/infrastructure/cache"
	"github.com/talentflow/backend/internal/infrastructure/config"
	"github.com/talentflow/backend/internal/infrastructure/logger"
	"github.com/talentflow/backend/internal/infrastructure/notification"
	"github.com/talentflow/backend/internal/infrastructure/persistence"
	"github.com/talentflow/backend/internal/interfaces/http/handler"
	"github.com/talentflow/backend/internal/interfaces/http/middleware"
	"github.com/talentflow/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting TalentFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	candidateRepo := persistence.NewGormCandidateRepository(db.DB)
	deploymentRepo := persistence.NewGormDeploymentRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)

	// Token blacklist backs logout and forced session invalidation.
	// Redis keeps revocations shared across instances; a single-process
	// deployment can run on the in-memory fallback.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Dedup store guards against double-sending deployment notices
	dedupFactory := cache.NewDedupStoreFactory(cfg.Redis, cache.WithLogger(log))
	dedupStore, err := dedupFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create dedup store", zap.Error(err))
	}
	defer func() {
		if err := dedupStore.Close(); err != nil {
			log.Error("Error closing dedup store", zap.Error(err))
		}
	}()

	dedupConfig := shared.DefaultDedupConfig()
	dedupConfig.Enabled = cfg.Dedup.Enabled
	if cfg.Dedup.TTL > 0 {
		dedupConfig.TTL = cfg.Dedup.TTL
	}

	// Identity services
	jwtService := auth.NewJWTService(cfg.JWT)
	authConfig := identityapp.DefaultAuthServiceConfig()
	if cfg.Auth.MaxLoginAttempts > 0 {
		authConfig.MaxLoginAttempts = cfg.Auth.MaxLoginAttempts
	}
	if cfg.Auth.LockoutDuration > 0 {
		authConfig.LockDuration = cfg.Auth.LockoutDuration
	}
	authService := identityapp.NewAuthService(employeeRepo, jwtService, blacklist, authConfig, log)
	employeeService := identityapp.NewEmployeeService(employeeRepo, log)

	// Pipeline services share the identity registry so office email,
	// employee ID and permanent ID stay unique across candidates and staff
	registryService := registryapp.NewService(candidateRepo, employeeRepo, log)
	hrtagService := pipelineapp.NewHRTagService(candidateRepo, registryService, log)
	hropsService := pipelineapp.NewHROpsService(candidateRepo, registryService, log)
	ldService := pipelineapp.NewLDService(candidateRepo, log)
	deliveryService := pipelineapp.NewDeliveryService(candidateRepo, log)

	// Deployment services
	mailer := notification.NewSMTPMailer(cfg.Mail, log)
	noticeService := deploymentapp.NewNoticeService(
		deploymentRepo, candidateRepo, employeeRepo, mailer, dedupStore, dedupConfig, log,
	)
	ledgerService := deploymentapp.NewLedgerService(deploymentRepo, log)

	// Dashboard service
	dashboardService := dashboardapp.NewService(candidateRepo, deploymentRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	hrtagHandler := handler.NewHRTagHandler(hrtagService)
	hropsHandler := handler.NewHROpsHandler(hropsService)
	ldHandler := handler.NewLDHandler(ldService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	deploymentHandler := handler.NewDeploymentHandler(noticeService, ledgerService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Stricter limiter for credential endpoints (if enabled)
	var authLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authLimit = middleware.AuthRateLimit(authLimiter)
	} else {
		authLimit = func(c *gin.Context) { c.Next() }
	}

	// Authentication routes. Login and refresh are public via JWT skip
	// paths; the rest require a valid access token.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authLimit, authHandler.Login)
	authRoutes.POST("/refresh", authLimit, authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Employee directory (Admin only)
	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.Use(middleware.RequireTeam())
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:id", employeeHandler.GetByID)
	employeeRoutes.PUT("/:id", employeeHandler.Update)
	employeeRoutes.PUT("/:id/mail-permission", employeeHandler.SetMailPermission)
	employeeRoutes.DELETE("/:id", employeeHandler.Delete)

	// HR Tag view: sourcing intake and routing to HR Ops
	hrtagRoutes := router.NewDomainGroup("hr-tag", "/hr-tag")
	hrtagRoutes.Use(middleware.RequireTeam("HR Tag", "HR"))
	hrtagRoutes.POST("/candidates", hrtagHandler.Submit)
	hrtagRoutes.GET("/candidates", hrtagHandler.List)
	hrtagRoutes.GET("/candidates/:id", hrtagHandler.GetByID)
	hrtagRoutes.PUT("/candidates/:id/notes", hrtagHandler.UpdateNotes)
	hrtagRoutes.PUT("/candidates/:id/resume", hrtagHandler.UpdateResume)
	hrtagRoutes.POST("/candidates/send-to-ops", hrtagHandler.SendToOps)
	hrtagRoutes.POST("/candidates/send-to-ops-permanent", hrtagHandler.RouteToOpsForPermanentID)

	// HR Ops view: identity assignment and onward routing
	hropsRoutes := router.NewDomainGroup("hr-ops", "/hr-ops")
	hropsRoutes.Use(middleware.RequireTeam("HR Ops"))
	hropsRoutes.GET("/candidates", hropsHandler.List)
	hropsRoutes.GET("/candidates/:id", hropsHandler.GetByID)
	hropsRoutes.PUT("/candidates/:id/office-email", hropsHandler.AssignOfficeEmail)
	hropsRoutes.PUT("/candidates/:id/employee-id", hropsHandler.AssignEmployeeID)
	hropsRoutes.PUT("/candidates/:id/permanent-id", hropsHandler.AssignPermanentID)
	hropsRoutes.POST("/candidates/send-to-ld", hropsHandler.SendToLD)
	hropsRoutes.POST("/candidates/send-to-admin", hropsHandler.SendToAdmin)
	hropsRoutes.POST("/candidates/send-to-admin-ld", hropsHandler.SendToAdminAndLD)
	hropsRoutes.POST("/candidates/send-to-delivery", hropsHandler.SendToDelivery)
	hropsRoutes.POST("/candidates/send-to-delivery-permanent", hropsHandler.SendToDeliveryPermanent)

	// L&D view: training decisions
	ldRoutes := router.NewDomainGroup("ld", "/ld")
	ldRoutes.Use(middleware.RequireTeam("L&D"))
	ldRoutes.GET("/candidates", ldHandler.List)
	ldRoutes.GET("/candidates/:id", ldHandler.GetByID)
	ldRoutes.POST("/candidates/:id/decision", ldHandler.RecordDecision)
	ldRoutes.POST("/candidates/send-to-delivery", ldHandler.SendToDelivery)

	// Delivery view: allocation and deployment marking
	deliveryRoutes := router.NewDomainGroup("delivery", "/delivery")
	deliveryRoutes.Use(middleware.RequireTeam("Delivery"))
	deliveryRoutes.GET("/candidates", deliveryHandler.List)
	deliveryRoutes.GET("/candidates/:id", deliveryHandler.GetByID)
	deliveryRoutes.PUT("/candidates/:id/allocation", deliveryHandler.UpdateAllocation)
	deliveryRoutes.POST("/candidates/mark-deployed", deliveryHandler.SendToHRTagAsDeployed)

	// Deployment notices and the deployment record ledger
	deploymentRoutes := router.NewDomainGroup("deployments", "/deployments")
	deploymentRoutes.Use(middleware.RequireTeam("Delivery"))
	deploymentRoutes.POST("/notices", deploymentHandler.SendNotice)
	deploymentRoutes.GET("/records", deploymentHandler.List)
	deploymentRoutes.GET("/records/:id", deploymentHandler.GetByID)
	deploymentRoutes.GET("/records/candidate/:candidateId", deploymentHandler.GetByCandidateID)
	deploymentRoutes.POST("/records/:id/exit", deploymentHandler.ProcessExit)
	deploymentRoutes.POST("/records/:id/transfer", deploymentHandler.InternalTransfer)
	deploymentRoutes.POST("/records/:id/transfer-notice", deploymentHandler.SendTransferNotice)
	deploymentRoutes.PUT("/records/:id/status", deploymentHandler.UpdateStatus)

	// Dashboards (any authenticated employee)
	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/pipeline", dashboardHandler.PipelineOverview)
	dashboardRoutes.GET("/teams/:view", dashboardHandler.TeamViewStats)
	dashboardRoutes.GET("/ld", dashboardHandler.LDStats)
	dashboardRoutes.GET("/deployments", dashboardHandler.DeploymentOverview)

	// System routes
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(authRoutes).
		Register(employeeRoutes).
		Register(hrtagRoutes).
		Register(hropsRoutes).
		Register(ldRoutes).
		Register(deliveryRoutes).
		Register(deploymentRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
