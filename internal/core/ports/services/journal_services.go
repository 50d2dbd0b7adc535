package services

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// JournalPosterSvc persists built journals exactly once per organization, branch and day.
type JournalPosterSvc interface {
	// Post writes the payload unless a journal for the same branch and day already exists,
	// in which case the existing transaction id is returned with AlreadyExists set.
	Post(ctx context.Context, payload domain.JournalPayload) (*domain.PostResult, error)
}
