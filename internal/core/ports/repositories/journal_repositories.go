package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// JournalReader defines read operations for posted journals
type JournalReader interface {
	// FindDailySalesJournal returns the daily sales journal of the branch whose when_ts lies in
	// the given window, or apperrors.ErrNotFound.
	FindDailySalesJournal(ctx context.Context, filters []Filter) (*domain.PostedJournal, error)
}

// JournalWriter defines write operations for posted journals
type JournalWriter interface {
	// SaveJournal persists the header and all lines atomically and returns the new transaction id.
	// It returns apperrors.ErrDuplicate when a journal for the same organization, branch and
	// business day already exists.
	SaveJournal(ctx context.Context, payload domain.JournalPayload) (string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
