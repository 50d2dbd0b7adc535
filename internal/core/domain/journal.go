package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalHeader is the header row of a daily sales journal.
type JournalHeader struct {
	OrganizationID  string          `json:"organization_id"`
	TransactionType string          `json:"transaction_type"`
	SmartCode       string          `json:"smart_code"`
	WhenTS          time.Time       `json:"when_ts"`
	BranchID        string          `json:"branch_id"`
	CurrencyCode    string          `json:"currency"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Memo            string          `json:"memo"`
}

// JournalLineMetadata records where a journal line came from.
type JournalLineMetadata struct {
	Source      string      `json:"source"`
	Day         string      `json:"day"`
	AccountType string      `json:"account_type"`
	Role        AccountRole `json:"role"`
}

// JournalLine is one debit or credit against a GL account. Exactly one of Debit and Credit is non-zero.
type JournalLine struct {
	LineNumber int                 `json:"line_number"`
	SmartCode  string              `json:"smart_code"`
	AccountID  string              `json:"account_id"`
	Debit      decimal.Decimal     `json:"debit"`
	Credit     decimal.Decimal     `json:"credit"`
	Metadata   JournalLineMetadata `json:"metadata"`
}

// JournalPayload is a fully built journal that has not been persisted yet.
type JournalPayload struct {
	Header JournalHeader `json:"header"`
	Lines  []JournalLine `json:"lines"`
}

// BusinessDay is the UTC calendar day the journal is posted for.
func (p JournalPayload) BusinessDay() time.Time {
	return DateOnly(p.Header.WhenTS)
}

// PostedJournal is the persisted materialization of a journal payload.
type PostedJournal struct {
	TransactionID  string          `json:"transactionID"`
	OrganizationID string          `json:"organizationID"`
	BranchID       string          `json:"branchID"`
	WhenTS         time.Time       `json:"whenTS"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	LineCount      int             `json:"lineCount"`
}

// PostResult is returned by the journal poster. AlreadyExists is set when an earlier journal
// for the same organization, branch and day was found instead of writing a new one.
type PostResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	AlreadyExists bool   `json:"already_exists,omitempty"`
}
