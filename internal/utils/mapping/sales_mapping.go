package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/models"
)

// ToDomainSalesTransaction converts a universal_transactions row to a sales header.
func ToDomainSalesTransaction(m models.UniversalTransaction) domain.SalesTransaction {
	return domain.SalesTransaction{
		TransactionID:  m.ID,
		OrganizationID: m.OrganizationID,
		BranchID:       derefString(m.BranchID),
		SmartCode:      m.SmartCode,
		Status:         m.Status,
		WhenTS:         m.TransactionDate,
		TotalAmount:    m.TotalAmount,
	}
}

// ToDomainSalesLine converts a universal_transaction_lines row. Metadata numbers are kept as
// json.Number so amounts such as vat_amount do not pass through float64.
func ToDomainSalesLine(m models.UniversalTransactionLine) (domain.SalesTransactionLine, error) {
	metadata, err := DecodeMetadata(m.Metadata)
	if err != nil {
		return domain.SalesTransactionLine{}, fmt.Errorf("line %s: %w", m.ID, err)
	}
	return domain.SalesTransactionLine{
		LineID:        m.ID,
		TransactionID: m.TransactionID,
		LineNumber:    m.LineNumber,
		SmartCode:     m.SmartCode,
		LineAmount:    m.LineAmount,
		Metadata:      metadata,
	}, nil
}

// DecodeMetadata parses a jsonb column into a map. Empty and null documents yield an empty map.
func DecodeMetadata(raw []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return out, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}
	return out, nil
}
