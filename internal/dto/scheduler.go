package dto

import (
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/utils"
)

const (
	SchedulerActionRunNow    = "run_now"
	SchedulerActionGetConfig = "get_config"
)

// DailySalesRequest is the body of the manual scheduler trigger.
type DailySalesRequest struct {
	Action          string   `json:"action" binding:"required,oneof=run_now get_config"`
	Day             string   `json:"day,omitempty" binding:"omitempty,datetime=2006-01-02"`
	OrganizationIDs []string `json:"organization_ids,omitempty" binding:"omitempty,dive,required"`
}

// PostingResultResponse reports one organization/branch/day attempt.
type PostingResultResponse struct {
	OrganizationID   string    `json:"organization_id"`
	BranchID         string    `json:"branch_id"`
	Day              string    `json:"day"`
	Success          bool      `json:"success"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	Error            string    `json:"error,omitempty"`
	Skipped          bool      `json:"skipped,omitempty"`
	SkipReason       string    `json:"skip_reason,omitempty"`
	AlreadyPosted    bool      `json:"already_posted,omitempty"`
	Attempts         int       `json:"attempts"`
	TotalAmount      string    `json:"total_amount"`
	TransactionCount int       `json:"transaction_count"`
	Timestamp        time.Time `json:"timestamp"`
}

// RunSummaryResponse aggregates a run.
type RunSummaryResponse struct {
	Total       int    `json:"total"`
	Successful  int    `json:"successful"`
	Failed      int    `json:"failed"`
	TotalAmount string `json:"total_amount"`
}

// DailySalesRunResponse is returned by run_now and by the cron trigger.
type DailySalesRunResponse struct {
	Day     string                  `json:"day"`
	Results []PostingResultResponse `json:"results"`
	Summary RunSummaryResponse      `json:"summary"`
}

// CronSkippedResponse is returned when the cron trigger fires outside the target minute.
type CronSkippedResponse struct {
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason"`
}

// SchedulerConfigResponse exposes the active scheduler configuration.
type SchedulerConfigResponse struct {
	Enabled         bool     `json:"enabled"`
	Timezone        string   `json:"timezone"`
	TargetTime      string   `json:"target_time"`
	OrganizationIDs []string `json:"organization_ids"`
	RetryAttempts   int      `json:"retry_attempts"`
	RetryDelay      string   `json:"retry_delay"`
}

func ToPostingResultResponse(r domain.PostingResult) PostingResultResponse {
	return PostingResultResponse{
		OrganizationID:   r.OrganizationID,
		BranchID:         r.BranchID,
		Day:              r.Day,
		Success:          r.Success,
		TransactionID:    r.TransactionID,
		Error:            r.Error,
		Skipped:          r.Skipped,
		SkipReason:       r.SkipReason,
		AlreadyPosted:    r.AlreadyPosted,
		Attempts:         r.Attempts,
		TotalAmount:      utils.FormatMoney(r.TotalAmount),
		TransactionCount: r.TransactionCount,
		Timestamp:        r.Timestamp,
	}
}

// ToDailySalesRunResponse converts run results and computes their summary.
func ToDailySalesRunResponse(day time.Time, results []domain.PostingResult) DailySalesRunResponse {
	res := DailySalesRunResponse{
		Day:     domain.FormatDay(day),
		Results: make([]PostingResultResponse, len(results)),
	}
	for i, r := range results {
		res.Results[i] = ToPostingResultResponse(r)
	}

	summary := domain.SummarizeResults(results)
	res.Summary = RunSummaryResponse{
		Total:       summary.Total,
		Successful:  summary.Successful,
		Failed:      summary.Failed,
		TotalAmount: utils.FormatMoney(summary.TotalAmount),
	}
	return res
}

func ToSchedulerConfigResponse(cfg domain.SchedulerConfig) SchedulerConfigResponse {
	orgIDs := cfg.OrganizationIDs
	if orgIDs == nil {
		orgIDs = []string{}
	}
	return SchedulerConfigResponse{
		Enabled:         cfg.Enabled,
		Timezone:        cfg.Timezone,
		TargetTime:      cfg.TargetTime,
		OrganizationIDs: orgIDs,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay.String(),
	}
}
