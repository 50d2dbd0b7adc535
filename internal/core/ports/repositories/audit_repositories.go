package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// SchedulerLogWriter persists scheduler audit records.
type SchedulerLogWriter interface {
	// SaveSchedulerLog stores one result as a scheduler_log transaction.
	SaveSchedulerLog(ctx context.Context, result domain.PostingResult) error
}
