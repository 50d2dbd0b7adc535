package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/platform/config"
	"github.com/SscSPs/daily_sales_posting/internal/repositories/database/pgsql"
	"github.com/SscSPs/daily_sales_posting/internal/repositories/memory"
	"github.com/SscSPs/daily_sales_posting/pkg/database"
)

// ErrDatabaseRequired is returned in production when PGSQL_URL is not set.
var ErrDatabaseRequired = errors.New("PGSQL_URL is required in production")

// Open connects the repositories selected by cfg. With a PGSQL_URL the pool is opened and
// migrations are applied; without one an empty in-memory store is used outside production.
// The returned func releases whatever was opened.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction {
			return portsrepo.RepositoryProvider{}, nil, ErrDatabaseRequired
		}
		logger.Warn("PGSQL_URL not set, using in-memory store; nothing will be persisted")
		return memory.NewStore().Provider(), func() {}, nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(pool)
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
}
