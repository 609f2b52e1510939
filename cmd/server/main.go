package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/memberconnect/backend/internal/application/identity"
	membershipapp "github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/auth"
	"github.com/memberconnect/backend/internal/infrastructure/cache"
	"github.com/memberconnect/backend/internal/infrastructure/config"
	"github.com/memberconnect/backend/internal/infrastructure/logger"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
	"github.com/memberconnect/backend/internal/infrastructure/persistence"
	"github.com/memberconnect/backend/internal/interfaces/http/handler"
	"github.com/memberconnect/backend/internal/interfaces/http/middleware"
	"github.com/memberconnect/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/memberconnect/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Member Connect API
//	@version		1.0
//	@description	Membership directory and expert matching backend

//	@contact.name	API Support
//	@contact.email	support@memberconnect.org

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

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

	log.Info("Starting Member Connect backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
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
	userRepo := persistence.NewGormUserRepository(db.DB)
	localGroupRepo := persistence.NewGormLocalGroupRepository(db.DB)
	industryRepo := persistence.NewGormIndustryRepository(db.DB)
	expertiseRepo := persistence.NewGormExpertiseRepository(db.DB)
	requestRepo := persistence.NewGormConnectionRequestRepository(db.DB)
	adminActionRepo := persistence.NewGormAdminActionRepository(db.DB)

	// Reset token store and token blacklist: Redis when enabled so state
	// survives restarts and is shared between instances, in-memory otherwise
	var tokenStore shared.ResetTokenStore
	var tokenBlacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisTokenStore, err := cache.NewRedisResetTokenStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis for reset tokens", zap.Error(err))
		}
		tokenStore = redisTokenStore

		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		tokenBlacklist = redisBlacklist
		log.Info("Redis-backed token stores initialized",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		tokenStore = cache.NewInMemoryResetTokenStore()
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("In-memory token stores initialized")
	}

	// Notification sender (email). Delivery failures never fail the
	// triggering request; the sender logs and moves on.
	sender, err := notification.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal("Failed to initialize notification sender", zap.Error(err))
	}

	// Identity services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, log)
	resetService := identityapp.NewPasswordResetService(
		userRepo, tokenStore, sender, tokenBlacklist,
		cfg.Frontend.BaseURL, cfg.PasswordReset.TokenTTL, log,
	)

	// Membership services
	groupResolver := membershipapp.NewGroupResolver(localGroupRepo)
	registrationService := membershipapp.NewRegistrationService(
		userRepo, groupResolver, jwtService, sender, cfg.Mail.AdminAddress, log,
	)
	accountService := membershipapp.NewAccountService(
		userRepo, industryRepo, adminActionRepo, groupResolver, sender,
		cfg.Frontend.BaseURL, log,
	)
	connectService := membershipapp.NewConnectService(userRepo, requestRepo, sender, log)
	directoryService := membershipapp.NewDirectoryService(
		userRepo, localGroupRepo, industryRepo, expertiseRepo, requestRepo, adminActionRepo, log,
	)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, resetService, jwtService)
	userHandler := handler.NewUserHandler(registrationService, accountService, directoryService)
	expertiseHandler := handler.NewExpertiseHandler(directoryService)
	localGroupHandler := handler.NewLocalGroupHandler(directoryService)
	industryHandler := handler.NewIndustryHandler(directoryService)
	connectionRequestHandler := handler.NewConnectionRequestHandler(connectService, directoryService)
	adminActionHandler := handler.NewAdminActionHandler(directoryService)
	systemHandler := handler.NewSystemHandler(directoryService, db)

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

	// Body size limit. The photo upload route carries its own larger limit.
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

	// JWT authentication middleware, shared between the API routes and the
	// swagger endpoint
	jwtMiddleware := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/auth/password-reset/request",
			"/api/v1/auth/password-reset/confirm",
			"/api/v1/users/register",
		},
		Logger: log,
	})

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, jwtMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Public read-only endpoints live outside the authenticated router so
	// anonymous visitors can browse the expert directory
	public := engine.Group("/api/v1")
	public.GET("/health", systemHandler.Health)
	public.GET("/experts", userHandler.ListExperts)
	public.GET("/experts/:id", userHandler.GetExpert)
	public.GET("/local-groups", localGroupHandler.ListLocalGroups)
	public.GET("/industries", industryHandler.ListIndustries)

	// Setup authenticated API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(jwtMiddleware)

	// Auth domain. Login, refresh and the password reset flow are on the
	// JWT skip list above; logout and /me require a valid token.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.POST("/password-reset/request", authHandler.RequestPasswordReset)
	authRoutes.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// User accounts. Registration is public via the skip list; everything
	// else is scoped to the owner or an admin inside the handlers.
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("/register", userHandler.Register)
	userRoutes.GET("/:id", userHandler.GetUser)
	userRoutes.PATCH("/:id", userHandler.UpdateUser)
	userRoutes.PUT("/:id/photo", middleware.BodyLimit(cfg.HTTP.MaxPhotoSize), userHandler.UploadPhoto)

	// Expertise records, always scoped to the authenticated member
	expertiseRoutes := router.NewDomainGroup("expertises", "/expertises")
	expertiseRoutes.GET("", expertiseHandler.ListExpertises)
	expertiseRoutes.POST("", expertiseHandler.CreateExpertise)
	expertiseRoutes.PUT("/:id", expertiseHandler.UpdateExpertise)
	expertiseRoutes.DELETE("/:id", expertiseHandler.DeleteExpertise)

	// Connection requests between seekers and experts
	connectionRoutes := router.NewDomainGroup("connections", "/connection-requests")
	connectionRoutes.POST("", connectionRequestHandler.Create)
	connectionRoutes.GET("", connectionRequestHandler.List)

	// Admin-only surface: member management, reference data writes, the
	// audit trail and directory statistics
	adminRoutes := router.NewDomainGroup("admin", "")
	adminRoutes.Use(middleware.RequireAdmin())
	adminRoutes.GET("/users", userHandler.ListUsers)
	adminRoutes.POST("/local-groups", localGroupHandler.CreateLocalGroup)
	adminRoutes.POST("/industries", industryHandler.CreateIndustry)
	adminRoutes.GET("/admin-actions", adminActionHandler.List)
	adminRoutes.GET("/stats", systemHandler.GetStats)

	// Register all domain groups
	r.Register(authRoutes).
		Register(userRoutes).
		Register(expertiseRoutes).
		Register(connectionRoutes).
		Register(adminRoutes)

	// Setup routes
	r.Setup()

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
