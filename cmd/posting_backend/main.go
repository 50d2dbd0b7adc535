package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/daily_sales_posting/internal/core/services"
	"github.com/SscSPs/daily_sales_posting/internal/handlers"
	"github.com/SscSPs/daily_sales_posting/internal/middleware"
	"github.com/SscSPs/daily_sales_posting/internal/platform/config"
	"github.com/SscSPs/daily_sales_posting/internal/platform/logging"
	"github.com/SscSPs/daily_sales_posting/internal/platform/storage"
	"github.com/gin-gonic/gin"

	_ "time/tzdata"
)

// @title Daily Sales Posting API
// @version 1.0
// @description Posts daily point-of-sale totals to the general ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	repos, closeStore, err := storage.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("scheduler_timezone", cfg.Scheduler.Timezone),
		slog.String("scheduler_target_time", cfg.Scheduler.TargetTime))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
