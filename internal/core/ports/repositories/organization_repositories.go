package repositories

import (
	"context"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// OrganizationReader defines read operations for organizations and their branches
type OrganizationReader interface {
	// FindOrganizationByID returns apperrors.ErrNotFound when the organization does not exist.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationIDs returns the ids of all active organizations.
	ListOrganizationIDs(ctx context.Context) ([]string, error)

	// ListBranches returns the active branch entities of an organization.
	ListBranches(ctx context.Context, organizationID string) ([]domain.Branch, error)
}
