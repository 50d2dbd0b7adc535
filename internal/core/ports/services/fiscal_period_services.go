package services

import (
	"context"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// FiscalPeriodGateSvc answers whether a date may receive postings.
type FiscalPeriodGateSvc interface {
	// IsOpen finds the fiscal period covering date. The answer is never cached.
	IsOpen(ctx context.Context, organizationID string, date time.Time) (domain.PeriodCheck, error)
}
