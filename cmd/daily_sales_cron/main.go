// Command daily_sales_cron runs one daily sales posting pass and exits. It is meant to be
// started by an external scheduler shortly after the configured target time.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/core/services"
	"github.com/SscSPs/daily_sales_posting/internal/dto"
	"github.com/SscSPs/daily_sales_posting/internal/platform/config"
	"github.com/SscSPs/daily_sales_posting/internal/platform/logging"
	"github.com/SscSPs/daily_sales_posting/internal/platform/storage"
	"github.com/SscSPs/daily_sales_posting/internal/utils"

	_ "time/tzdata"
)

const cronSecretBytes = 32

func main() {
	dayFlag := flag.String("day", "", "business day to post (YYYY-MM-DD), defaults to yesterday in UTC")
	orgFlag := flag.String("org", "", "comma separated organization ids, defaults to SCHEDULER_ORGANIZATION_IDS or all active organizations")
	newSecret := flag.Bool("new-cron-secret", false, "print a new cron secret and its CRON_SECRET_HASH, then exit")
	flag.Parse()

	if *newSecret {
		if err := printNewCronSecret(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	os.Exit(run(*dayFlag, *orgFlag))
}

func run(dayArg, orgArg string) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	day := domain.PreviousDay(time.Now())
	if dayArg != "" {
		day, err = domain.ParseDay(dayArg)
		if err != nil {
			logger.Error("Invalid -day flag", slog.String("error", err.Error()))
			return 2
		}
	}

	var orgIDs []string
	for _, id := range strings.Split(orgArg, ",") {
		if id = strings.TrimSpace(id); id != "" {
			orgIDs = append(orgIDs, id)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("error", err.Error()))
		return 1
	}
	defer closeStore()

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		return 1
	}

	results, err := serviceContainer.Scheduler.RunForAllOrganizations(ctx, &day, orgIDs)
	if err != nil {
		logger.Error("Daily sales posting run failed", slog.String("error", err.Error()))
		return 1
	}

	summary := dto.ToDailySalesRunResponse(day, results).Summary
	logger.Info("Daily sales posting run finished",
		slog.String("day", domain.FormatDay(day)),
		slog.Int("total", summary.Total),
		slog.Int("successful", summary.Successful),
		slog.Int("failed", summary.Failed),
		slog.String("total_amount", summary.TotalAmount))

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

func printNewCronSecret() error {
	secret, err := utils.GenerateSecureRandomString(cronSecretBytes)
	if err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	hash, err := utils.HashSecret(secret)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}
	fmt.Printf("X-Cron-Secret: %s\nCRON_SECRET_HASH=%s\n", secret, hash)
	return nil
}
