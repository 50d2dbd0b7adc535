package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SkipReasonNoSales marks a branch/day that had nothing to post.
const SkipReasonNoSales = "no sales"

// SkipReasonNoPostableAmounts marks a day whose sales net to no positive bucket, e.g. only refunds.
const SkipReasonNoPostableAmounts = "no postable amounts"

// PostingResult is the outcome of one scheduler attempt for an organization, branch and day.
type PostingResult struct {
	OrganizationID   string          `json:"organization_id"`
	BranchID         string          `json:"branch_id"`
	Day              string          `json:"day"`
	Success          bool            `json:"success"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	Error            string          `json:"error,omitempty"`
	Skipped          bool            `json:"skipped,omitempty"`
	SkipReason       string          `json:"skip_reason,omitempty"`
	AlreadyPosted    bool            `json:"already_posted,omitempty"`
	Attempts         int             `json:"attempts"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	Timestamp        time.Time       `json:"timestamp"`
}

// RunSummary aggregates the results of one scheduler run.
type RunSummary struct {
	Total       int             `json:"total"`
	Successful  int             `json:"successful"`
	Failed      int             `json:"failed"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SummarizeResults counts successes and failures and sums the posted amounts.
func SummarizeResults(results []PostingResult) RunSummary {
	summary := RunSummary{Total: len(results), TotalAmount: decimal.Zero}
	for _, r := range results {
		if r.Success {
			summary.Successful++
			summary.TotalAmount = summary.TotalAmount.Add(r.TotalAmount)
		} else {
			summary.Failed++
		}
	}
	return summary
}
