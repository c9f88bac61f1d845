package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/auth"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/config"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/handlers"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/middleware"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/repository"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/shiprocket"
	ordersync "github.com/tgh-ops/warehouse-fulfillment-service/internal/sync"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MAIN: initializes the server and its dependencies
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	db, err := repository.Open(cfg.Database.DSN())
	if err != nil {
		zap.L().Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	users := repository.NewUserRepository(db)
	orders := repository.NewOrderRepository(db)
	mappings := repository.NewProductMappingRepository(db)
	audits := repository.NewAuditRepository(db)

	// A fresh deployment gets a default admin so the dashboard is reachable.
	adminHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		zap.L().Error("Failed to hash default admin password", zap.Error(err))
		os.Exit(1)
	}
	if err := users.EnsureDefaultAdmin(context.Background(), cfg.Admin.Email, adminHash); err != nil {
		zap.L().Error("Failed to seed default admin", zap.Error(err))
		os.Exit(1)
	}

	platform, err := shiprocket.NewClient(cfg.Shiprocket)
	if err != nil {
		zap.L().Error("Failed to start Shiprocket client", zap.Error(err))
		os.Exit(1)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	reconciler := ordersync.NewReconciler(orders, mappings)
	v := validation.New()

	// HTTP ROUTES
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(users, jwtService, v),
		Users:  handlers.NewUsersHandler(users, v),
		Orders: handlers.NewOrdersHandler(orders, audits, v),
		Sync:   handlers.NewSyncHandler(reconciler, mappings, platform, v),
		JWT:    jwtService,
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// GRACEFUL SHUTDOWN
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		<-sigChan

		zap.L().Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Graceful shutdown failed", zap.Error(err))
		}

		zap.L().Info("Server exited")
		os.Exit(0)
	}()

	zap.L().Info("Server started", zap.String("port", cfg.App.Port))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server stopped unexpectedly", zap.Error(err))
	}
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	if cfg.Format == "console" {
		zapCfg.Encoding = "console"
	}
	zapCfg.EncoderConfig.MessageKey = "message"
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
