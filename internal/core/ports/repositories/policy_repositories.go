package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// PolicyReader defines read operations for sales posting policies
type PolicyReader interface {
	// FindPolicyFields returns every dynamic data row of the organization carrying the policy
	// smart code, including legacy dotted-path rows.
	FindPolicyFields(ctx context.Context, organizationID string) ([]domain.DynamicField, error)
}

// PolicyWriter defines write operations for sales posting policies
type PolicyWriter interface {
	// ReplacePolicy deletes all policy rows of the organization and stores the policy as a
	// single serialized record, atomically.
	ReplacePolicy(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error
}

// PolicyRepositoryFacade combines all policy-related repository interfaces
type PolicyRepositoryFacade interface {
	PolicyReader
	PolicyWriter
}
