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

	identityapp "github.com/kalori/backend/internal/application/identity"
	menuapp "github.com/kalori/backend/internal/application/menu"
	"github.com/kalori/backend/internal/infrastructure/auth"
	"github.com/kalori/backend/internal/infrastructure/config"
	"github.com/kalori/backend/internal/infrastructure/logger"
	"github.com/kalori/backend/internal/infrastructure/persistence"
	"github.com/kalori/backend/internal/infrastructure/storage"
	"github.com/kalori/backend/internal/interfaces/http/handler"
	"github.com/kalori/backend/internal/interfaces/http/middleware"
	"github.com/kalori/backend/internal/interfaces/http/router"
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

	log.Info("Starting Kalori Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
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
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	adminRepo := persistence.NewGormAdminUserRepository(db.DB)
	profileRepo := persistence.NewGormUserProfileRepository(db.DB)

	// Image store. Development runs without bucket credentials fall back to
	// the in-memory stub.
	images, err := newImageStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize image store", zap.Error(err))
	}

	// Token verification and the admin allow-list gate
	verifier := auth.NewTokenVerifier(cfg.Auth)
	gate := identityapp.NewAdminGate(verifier, adminRepo, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := gate.EnsureSeeded(seedCtx, cfg.Admin.Emails); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed admin allow-list", zap.Error(err))
	}
	cancelSeed()

	// Application services
	menuQuery := menuapp.NewQueryService(categoryRepo, itemRepo, orderRepo)
	menuService := menuapp.NewService(categoryRepo, itemRepo, orderRepo, images, log)
	profileService := identityapp.NewProfileService(profileRepo, gate, images)

	// HTTP handlers
	menuHandler := handler.NewMenuHandler(menuQuery)
	adminMenuHandler := handler.NewAdminMenuHandler(menuQuery, menuService)
	categoryHandler := handler.NewCategoryHandler(menuService)
	profileHandler := handler.NewProfileHandler(profileService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Routes: the menu and health endpoints are public, the profile endpoints
	// require a verified identity and the admin console sits behind the gate
	r := router.NewRouter(engine)
	r.Mount("", nil, menuHandler, systemHandler)
	r.Mount("", []gin.HandlerFunc{middleware.UserAuth(gate)}, profileHandler)
	r.Mount("/admin", []gin.HandlerFunc{middleware.AdminAuth(gate)}, adminMenuHandler, categoryHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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

// imageStore is the surface both application packages need from the store
type imageStore interface {
	UploadDataURI(ctx context.Context, dataURI, folder string) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

func newImageStore(cfg *config.Config, log *zap.Logger) (imageStore, error) {
	if cfg.Storage.AccessKey == "" && cfg.Storage.SecretKey == "" && cfg.App.Env != "production" {
		log.Warn("No storage credentials configured, using in-memory image store")
		return storage.NewStubImageStore(), nil
	}

	store, err := storage.NewS3ImageStore(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("Image store ready",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("endpoint", cfg.Storage.Endpoint),
	)
	return store, nil
}
