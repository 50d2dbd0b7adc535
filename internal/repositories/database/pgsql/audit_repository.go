package pgsql

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.SchedulerLogWriter {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SchedulerLogWriter = (*PgxAuditRepository)(nil)

// SaveSchedulerLog stores a posting result as a header-only scheduler_log transaction.
func (r *PgxAuditRepository) SaveSchedulerLog(ctx context.Context, result domain.PostingResult) error {
	m, err := mapping.ToModelSchedulerLog(uuid.NewString(), result)
	if err != nil {
		return err
	}

	_, err = r.Pool.Exec(ctx, insertTransactionQuery,
		m.ID,
		m.OrganizationID,
		m.TransactionType,
		m.SmartCode,
		m.TransactionDate,
		m.BusinessDate,
		m.BranchID,
		m.CurrencyCode,
		m.Status,
		m.TotalAmount,
		m.Memo,
		m.Metadata,
	)
	if err != nil {
		return queryError("failed to insert scheduler log", err)
	}
	return nil
}
