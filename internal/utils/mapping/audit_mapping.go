package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/models"
	"github.com/SscSPs/daily_sales_posting/internal/utils"
	"github.com/shopspring/decimal"
)

// ToModelSchedulerLog converts a posting result into a scheduler_log transaction row.
func ToModelSchedulerLog(id string, r domain.PostingResult) (models.UniversalTransaction, error) {
	metadata, err := json.Marshal(SchedulerLogMetadata(r))
	if err != nil {
		return models.UniversalTransaction{}, fmt.Errorf("encoding scheduler log metadata: %w", err)
	}

	status := "success"
	if !r.Success {
		status = "failed"
	}

	return models.UniversalTransaction{
		ID:              id,
		OrganizationID:  r.OrganizationID,
		TransactionType: domain.TransactionTypeSchedulerLog,
		SmartCode:       domain.SmartCodeSchedulerLog,
		TransactionDate: r.Timestamp.UTC(),
		BranchID:        optionalString(r.BranchID),
		Status:          status,
		TotalAmount:     decimal.Zero,
		Metadata:        metadata,
	}, nil
}

// SchedulerLogMetadata is the metadata document recorded for one result.
func SchedulerLogMetadata(r domain.PostingResult) map[string]any {
	md := map[string]any{
		"day":               r.Day,
		"success":           r.Success,
		"attempts":          r.Attempts,
		"transaction_count": r.TransactionCount,
		"total_amount":      utils.FormatMoney(r.TotalAmount),
	}
	if r.TransactionID != "" {
		md["transaction_id"] = r.TransactionID
	}
	if r.Error != "" {
		md["error"] = r.Error
	}
	if r.Skipped {
		md["skipped"] = true
		md["skip_reason"] = r.SkipReason
	}
	if r.AlreadyPosted {
		md["already_posted"] = true
	}
	return md
}
