package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/daily_sales_posting/internal/platform/config"
	"github.com/SscSPs/daily_sales_posting/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_WithoutDatabaseURLUsesMemoryStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos, closeFn, err := Open(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &memory.Store{}, repos.SalesRepo)
	assert.Same(t, repos.SalesRepo, repos.JournalRepo)
}

func TestOpen_ProductionRequiresDatabaseURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, closeFn, err := Open(context.Background(), &config.Config{IsProduction: true}, logger)
	assert.ErrorIs(t, err, ErrDatabaseRequired)
	assert.Nil(t, closeFn)
}

func TestOpen_InvalidDatabaseURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, _, err := Open(context.Background(), &config.Config{DatabaseURL: "://not-a-url"}, logger)
	assert.ErrorContains(t, err, "failed to initialize database pool")
}
