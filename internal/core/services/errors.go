package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
)

var (
	ErrPolicyNotFound     = fmt.Errorf("sales posting policy not found: %w", apperrors.ErrNotFound)
	ErrPolicyInvalid      = fmt.Errorf("sales posting policy invalid: %w", apperrors.ErrValidation)
	ErrFiscalPeriodClosed = fmt.Errorf("fiscal period is closed: %w", apperrors.ErrConflict)
	ErrNoFiscalPeriod     = fmt.Errorf("no fiscal period found: %w", apperrors.ErrConflict)
	ErrSummarizeFailed    = errors.New("failed to summarize daily sales")
	ErrEmptyJournal       = fmt.Errorf("journal has no lines: %w", apperrors.ErrValidation)
	ErrJournalUnbalanced  = fmt.Errorf("journal rejected: %w", apperrors.ErrValidation)
)

// IsRetryable reports whether a posting attempt that failed with err may succeed when repeated.
// Configuration problems, closed periods, invalid payloads and cancellation are permanent;
// everything else is treated as a transient store failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	for _, permanent := range []error{
		ErrPolicyNotFound,
		ErrPolicyInvalid,
		ErrFiscalPeriodClosed,
		ErrNoFiscalPeriod,
		ErrEmptyJournal,
		apperrors.ErrValidation,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errors.Is(err, permanent) {
			return false
		}
	}
	return true
}
