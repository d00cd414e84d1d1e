package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountingapp "github.com/geoffkats/accounting-system/internal/application/accounting"
	currencyapp "github.com/geoffkats/accounting-system/internal/application/currency"
	settingsapp "github.com/geoffkats/accounting-system/internal/application/settings"
	"github.com/geoffkats/accounting-system/internal/infrastructure/config"
	"github.com/geoffkats/accounting-system/internal/infrastructure/logger"
	"github.com/geoffkats/accounting-system/internal/infrastructure/persistence"
	"github.com/geoffkats/accounting-system/internal/infrastructure/storage"
	"github.com/geoffkats/accounting-system/internal/interfaces/http/handler"
	"github.com/geoffkats/accounting-system/internal/interfaces/http/middleware"
	"github.com/geoffkats/accounting-system/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting accounting system",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	objectStorage := newObjectStorage(cfg, log)

	settingsRepo := persistence.NewGormCompanySettingRepository(db.DB)
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)

	settingsService := settingsapp.NewService(settingsRepo, currencyRepo, objectStorage, log)
	currencyService := currencyapp.NewService(currencyRepo, log)
	accountingService := accountingapp.NewService(accountRepo)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NewRouter(engine).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewCurrencyHandler(currencyService)).
		Register(handler.NewAccountHandler(accountingService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
}

// newObjectStorage picks the S3 backend when credentials are configured and
// falls back to in-memory storage for local development.
func newObjectStorage(cfg *config.Config, log *zap.Logger) settingsapp.ObjectStorageService {
	if cfg.Storage.AccessKey == "" || cfg.Storage.SecretKey == "" {
		log.Warn("No object storage credentials configured, using in-memory storage")
		return storage.NewMemoryObjectStorage()
	}

	s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := s3Storage.EnsureBucket(context.Background()); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err))
	}
	return s3Storage
}
