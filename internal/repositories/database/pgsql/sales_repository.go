package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionSelect = `
	SELECT id, organization_id, transaction_type, smart_code, transaction_date, business_date,
	       branch_id, currency_code, status, total_amount, memo, metadata, created_at
	FROM universal_transactions`

const transactionLineSelect = `
	SELECT id, transaction_id, organization_id, line_number, smart_code, entity_id,
	       line_amount, debit_amount, credit_amount, metadata, created_at
	FROM universal_transaction_lines`

type PgxSalesRepository struct {
	BaseRepository
}

func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesTransactionReader {
	return &PgxSalesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesTransactionReader = (*PgxSalesRepository)(nil)

// ListSalesTransactions returns the transactions matching filters, oldest first.
func (r *PgxSalesRepository) ListSalesTransactions(ctx context.Context, filters []portsrepo.Filter) ([]domain.SalesTransaction, error) {
	where, args, err := buildWhere(filters, transactionColumns, 1)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, transactionSelect+where+" ORDER BY transaction_date, id", args...)
	if err != nil {
		return nil, queryError("failed to query sales transactions", err)
	}
	defer rows.Close()

	var txns []domain.SalesTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, queryError("failed to scan sales transaction", err)
		}
		txns = append(txns, mapping.ToDomainSalesTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("error iterating sales transactions", err)
	}
	return txns, nil
}

// ListTransactionLines returns the lines of one transaction ordered by line number.
func (r *PgxSalesRepository) ListTransactionLines(ctx context.Context, transactionID string) ([]domain.SalesTransactionLine, error) {
	rows, err := r.Pool.Query(ctx, transactionLineSelect+" WHERE transaction_id = $1 ORDER BY line_number", transactionID)
	if err != nil {
		return nil, queryError("failed to query transaction lines", err)
	}
	defer rows.Close()

	var lines []domain.SalesTransactionLine
	for rows.Next() {
		var m models.UniversalTransactionLine
		if err := rows.Scan(
			&m.ID,
			&m.TransactionID,
			&m.OrganizationID,
			&m.LineNumber,
			&m.SmartCode,
			&m.EntityID,
			&m.LineAmount,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, queryError("failed to scan transaction line", err)
		}
		line, err := mapping.ToDomainSalesLine(m)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("error iterating transaction lines", err)
	}
	return lines, nil
}

func scanTransaction(row pgx.Row) (models.UniversalTransaction, error) {
	var m models.UniversalTransaction
	err := row.Scan(
		&m.ID,
		&m.OrganizationID,
		&m.TransactionType,
		&m.SmartCode,
		&m.TransactionDate,
		&m.BusinessDate,
		&m.BranchID,
		&m.CurrencyCode,
		&m.Status,
		&m.TotalAmount,
		&m.Memo,
		&m.Metadata,
		&m.CreatedAt,
	)
	return m, err
}
