package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/google/uuid"
)

// ToModelJournalHeader converts a built journal header into a universal_transactions row.
func ToModelJournalHeader(transactionID string, p domain.JournalPayload) (models.UniversalTransaction, error) {
	h := p.Header
	day := p.BusinessDay()
	metadata, err := json.Marshal(map[string]any{
		"source":     domain.LineSourceDailySales,
		"day":        domain.FormatDay(day),
		"line_count": len(p.Lines),
	})
	if err != nil {
		return models.UniversalTransaction{}, fmt.Errorf("encoding journal metadata: %w", err)
	}

	return models.UniversalTransaction{
		ID:              transactionID,
		OrganizationID:  h.OrganizationID,
		TransactionType: h.TransactionType,
		SmartCode:       h.SmartCode,
		TransactionDate: h.WhenTS.UTC(),
		BusinessDate:    &day,
		// Never NULL: the daily journal index and the branch lookup both compare on it.
		BranchID:        &h.BranchID,
		CurrencyCode:    optionalString(h.CurrencyCode),
		Status:          h.Status,
		TotalAmount:     h.TotalAmount,
		Memo:            optionalString(h.Memo),
		Metadata:        metadata,
	}, nil
}

// ToModelJournalLines converts journal lines into universal_transaction_lines rows attached to
// transactionID. line_amount is debit minus credit.
func ToModelJournalLines(transactionID string, p domain.JournalPayload) ([]models.UniversalTransactionLine, error) {
	rows := make([]models.UniversalTransactionLine, 0, len(p.Lines))
	for _, l := range p.Lines {
		metadata, err := json.Marshal(l.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding metadata of line %d: %w", l.LineNumber, err)
		}
		accountID := l.AccountID
		rows = append(rows, models.UniversalTransactionLine{
			ID:             uuid.NewString(),
			TransactionID:  transactionID,
			OrganizationID: p.Header.OrganizationID,
			LineNumber:     l.LineNumber,
			SmartCode:      l.SmartCode,
			EntityID:       &accountID,
			LineAmount:     l.Debit.Sub(l.Credit),
			DebitAmount:    l.Debit,
			CreditAmount:   l.Credit,
			Metadata:       metadata,
		})
	}
	return rows, nil
}

// ToDomainPostedJournal converts a stored journal header into its domain summary.
func ToDomainPostedJournal(m models.UniversalTransaction, lineCount int) domain.PostedJournal {
	return domain.PostedJournal{
		TransactionID:  m.ID,
		OrganizationID: m.OrganizationID,
		BranchID:       derefString(m.BranchID),
		WhenTS:         m.TransactionDate,
		TotalAmount:    m.TotalAmount,
		LineCount:      lineCount,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
