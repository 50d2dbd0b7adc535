package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UniversalTransaction is a row of universal_transactions. Sales, daily journals and scheduler
// logs all live in this table, told apart by transaction_type and smart_code.
type UniversalTransaction struct {
	ID              string          `db:"id"`
	OrganizationID  string          `db:"organization_id"`
	TransactionType string          `db:"transaction_type"`
	SmartCode       string          `db:"smart_code"`
	TransactionDate time.Time       `db:"transaction_date"`
	BusinessDate    *time.Time      `db:"business_date"` // set only on daily journals
	BranchID        *string         `db:"branch_id"`
	CurrencyCode    *string         `db:"currency_code"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Memo            *string         `db:"memo"`
	Metadata        []byte          `db:"metadata"` // jsonb
	CreatedAt       time.Time       `db:"created_at"`
}

// UniversalTransactionLine is a row of universal_transaction_lines.
type UniversalTransactionLine struct {
	ID             string          `db:"id"`
	TransactionID  string          `db:"transaction_id"`
	OrganizationID string          `db:"organization_id"`
	LineNumber     int             `db:"line_number"`
	SmartCode      string          `db:"smart_code"`
	EntityID       *string         `db:"entity_id"` // GL account on journal lines
	LineAmount     decimal.Decimal `db:"line_amount"`
	DebitAmount    decimal.Decimal `db:"debit_amount"`
	CreditAmount   decimal.Decimal `db:"credit_amount"`
	Metadata       []byte          `db:"metadata"`
	CreatedAt      time.Time       `db:"created_at"`
}
