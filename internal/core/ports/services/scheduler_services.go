package services

import (
	"context"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// SchedulerSvc drives the daily posting run.
type SchedulerSvc interface {
	// RunForAllOrganizations posts day (yesterday in UTC when nil) for every branch of every
	// organization in orgIDs, or of every configured/known organization when orgIDs is empty.
	// The error is only non-nil when the organization list itself cannot be read.
	RunForAllOrganizations(ctx context.Context, day *time.Time, orgIDs []string) ([]domain.PostingResult, error)

	// PostDailySalesForBranch runs the pipeline for one branch and day with retries.
	PostDailySalesForBranch(ctx context.Context, organizationID, branchID string, day time.Time) domain.PostingResult

	// IsScheduledTime reports whether now, in the configured timezone, is the configured target minute.
	IsScheduledTime(now time.Time) bool

	// Config returns the active scheduler configuration.
	Config() domain.SchedulerConfig
}
