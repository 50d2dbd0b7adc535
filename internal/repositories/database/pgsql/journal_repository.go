package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertTransactionQuery = `
	INSERT INTO universal_transactions (
		id, organization_id, transaction_type, smart_code, transaction_date, business_date,
		branch_id, currency_code, status, total_amount, memo, metadata
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const insertTransactionLineQuery = `
	INSERT INTO universal_transaction_lines (
		id, transaction_id, organization_id, line_number, smart_code, entity_id,
		line_amount, debit_amount, credit_amount, metadata
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for daily journals.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// FindDailySalesJournal returns the earliest journal matching filters, or apperrors.ErrNotFound.
func (r *PgxJournalRepository) FindDailySalesJournal(ctx context.Context, filters []portsrepo.Filter) (*domain.PostedJournal, error) {
	where, args, err := buildWhere(filters, transactionColumns, 1)
	if err != nil {
		return nil, err
	}

	m, err := scanTransaction(r.Pool.QueryRow(ctx, transactionSelect+where+" ORDER BY created_at, id LIMIT 1", args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, queryError("failed to find daily sales journal", err)
	}

	var lineCount int
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM universal_transaction_lines WHERE transaction_id = $1`, m.ID).Scan(&lineCount); err != nil {
		return nil, queryError("failed to count lines of journal "+m.ID, err)
	}

	posted := mapping.ToDomainPostedJournal(m, lineCount)
	return &posted, nil
}

// SaveJournal writes the header and every line in one database transaction. A second journal for
// the same organization, branch and business day violates the daily index and yields
// apperrors.ErrDuplicate with nothing written.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, payload domain.JournalPayload) (string, error) {
	transactionID := uuid.NewString()

	header, err := mapping.ToModelJournalHeader(transactionID, payload)
	if err != nil {
		return "", err
	}
	lines, err := mapping.ToModelJournalLines(transactionID, payload)
	if err != nil {
		return "", err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	_, err = tx.Exec(ctx, insertTransactionQuery,
		header.ID,
		header.OrganizationID,
		header.TransactionType,
		header.SmartCode,
		header.TransactionDate,
		header.BusinessDate,
		header.BranchID,
		header.CurrencyCode,
		header.Status,
		header.TotalAmount,
		header.Memo,
		header.Metadata,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("daily sales journal for %s on %s: %w",
				header.OrganizationID, domain.FormatDay(payload.BusinessDay()), apperrors.ErrDuplicate)
		}
		return "", queryError("failed to insert journal "+transactionID, err)
	}

	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(insertTransactionLineQuery,
			l.ID,
			l.TransactionID,
			l.OrganizationID,
			l.LineNumber,
			l.SmartCode,
			l.EntityID,
			l.LineAmount,
			l.DebitAmount,
			l.CreditAmount,
			l.Metadata,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return "", queryError("failed to insert lines of journal "+transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("daily sales journal for %s: %w", header.OrganizationID, apperrors.ErrDuplicate)
		}
		return "", err
	}
	return transactionID, nil
}
