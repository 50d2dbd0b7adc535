package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// SalesTransactionReader defines read operations for point-of-sale transactions.
type SalesTransactionReader interface {
	// ListSalesTransactions retrieves transaction headers matching all filters, oldest first.
	ListSalesTransactions(ctx context.Context, filters []Filter) ([]domain.SalesTransaction, error)

	// ListTransactionLines retrieves the lines of one transaction ordered by line number.
	ListTransactionLines(ctx context.Context, transactionID string) ([]domain.SalesTransactionLine, error)
}
