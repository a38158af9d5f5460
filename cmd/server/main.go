package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/walkout/backend/internal/application/catalog"
	checkoutapp "github.com/walkout/backend/internal/application/checkout"
	identityapp "github.com/walkout/backend/internal/application/identity"
	"github.com/walkout/backend/internal/infrastructure/auth"
	"github.com/walkout/backend/internal/infrastructure/config"
	"github.com/walkout/backend/internal/infrastructure/logger"
	"github.com/walkout/backend/internal/infrastructure/otp"
	"github.com/walkout/backend/internal/infrastructure/payment"
	"github.com/walkout/backend/internal/infrastructure/persistence"
	"github.com/walkout/backend/internal/infrastructure/realtime"
	"github.com/walkout/backend/internal/interfaces/http/handler"
	"github.com/walkout/backend/internal/interfaces/http/middleware"
	"github.com/walkout/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting walkout backend",
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
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	receiptRepo := persistence.NewGormReceiptRepository(db)

	// Live cart subscriber registry
	registry := realtime.NewRegistry(log)

	// Verification code provider
	var otpProvider otp.Provider
	switch cfg.OTP.Provider {
	case "redis":
		redisProvider, err := otp.NewRedisProvider(cfg.Redis, cfg.OTP.TTL, func() string { return cfg.OTP.StaticCode })
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisProvider.Close(); err != nil {
				log.Error("Error closing redis", zap.Error(err))
			}
		}()
		otpProvider = redisProvider
	default:
		otpProvider = otp.NewStaticProvider(cfg.OTP.StaticCode)
	}
	log.Info("Verification provider ready", zap.String("provider", cfg.OTP.Provider))

	// Payment provider (simulated gateway)
	paymentProvider := payment.NewSimulator(log)

	// JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, otpProvider, jwtService, log)
	productService := catalogapp.NewProductService(productRepo)
	sessionService := checkoutapp.NewSessionService(sessionRepo, userRepo, log)
	cartService := checkoutapp.NewCartService(sessionRepo, cartRepo, productRepo, registry, log)
	checkoutService := checkoutapp.NewCheckoutService(sessionRepo, cartRepo, receiptRepo, paymentProvider, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	cartHandler := handler.NewCartHandler(cartService, checkoutService, registry, log)
	healthHandler := handler.NewHealthHandler(db)

	// Setup gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Register routes
	r := router.NewRouter(engine)
	r.Register(healthHandler).
		Register(authHandler).
		Register(userHandler).
		Register(productHandler).
		Register(sessionHandler).
		Register(cartHandler)
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
