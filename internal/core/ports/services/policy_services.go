package services

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// PolicyReaderSvc defines read operations for sales posting policies
type PolicyReaderSvc interface {
	// Get returns the organization's policy, or an error wrapping apperrors.ErrNotFound.
	Get(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error)
}

// PolicyWriterSvc defines write operations for sales posting policies
type PolicyWriterSvc interface {
	// Set replaces the organization's policy.
	Set(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error

	// CreateDefault builds a policy from suggested mappings and stores it only when it validates.
	CreateDefault(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error)
}

// PolicyAdvisorSvc checks and proposes account mappings
type PolicyAdvisorSvc interface {
	// SuggestMappings matches the organization's active GL accounts to account roles by name or code.
	SuggestMappings(ctx context.Context, organizationID string) (map[domain.AccountRole]string, error)

	// Validate reports one error per required role that is unmapped or mapped to an unknown account.
	Validate(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) (*domain.PolicyValidation, error)
}

// PolicySvcFacade combines all policy-related service interfaces
type PolicySvcFacade interface {
	PolicyReaderSvc
	PolicyWriterSvc
	PolicyAdvisorSvc
}
