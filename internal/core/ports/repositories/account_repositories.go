package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// GLAccountReader defines read operations for the chart of accounts
type GLAccountReader interface {
	// ListActiveGLAccounts returns account entities with ledger_type GL and is_active true.
	ListActiveGLAccounts(ctx context.Context, organizationID string) ([]domain.GLAccount, error)
}
