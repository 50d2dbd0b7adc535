package services

import (
	"context"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// SalesSummarizerSvc reduces a day of point-of-sale activity to bucket totals.
type SalesSummarizerSvc interface {
	// Summarize aggregates the posted sales of one branch in [dayStart, dayEnd). Read-only.
	Summarize(ctx context.Context, organizationID, branchID string, dayStart, dayEnd time.Time) (*domain.SalesSummary, error)
}
