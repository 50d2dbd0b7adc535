package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal period entities
type FiscalPeriodReader interface {
	// ListFiscalPeriods returns every fiscal period of the organization with its
	// start_date, end_date and status fields resolved, in creation order.
	ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error)
}
