package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
)

// roleSuggestionPatterns lists, per role, lowercase fragments matched against account names and
// codes. Earlier fragments win.
var roleSuggestionPatterns = map[domain.AccountRole][]string{
	domain.RoleServiceRevenue:    {"service revenue", "service sales", "salon revenue", "4100", "4110"},
	domain.RoleProductRevenue:    {"product revenue", "product sales", "retail sales", "retail revenue", "4200", "4210"},
	domain.RoleVATLiability:      {"vat payable", "vat output", "output vat", "sales tax payable", "vat liability", "2300", "2310"},
	domain.RoleDiscountsContra:   {"sales discounts", "discounts", "discount allowed", "4900", "4910"},
	domain.RoleTipsPayable:       {"tips payable", "gratuities payable", "tips", "2400", "2410"},
	domain.RoleCashClearing:      {"cash clearing", "cash on hand", "petty cash", "cash", "1100", "1010"},
	domain.RoleCardClearing:      {"card clearing", "credit card clearing", "merchant clearing", "card receivable", "1120", "1130"},
	domain.RoleGiftcardLiability: {"gift card liability", "giftcard liability", "gift card", "deferred revenue", "2500", "2510"},
	domain.RoleRoundingDiff:      {"rounding difference", "rounding", "cash over short", "6990", "7990"},
}

// policyService manages the per-organization sales posting policy.
type policyService struct {
	BaseService
	policyRepo  portsrepo.PolicyRepositoryFacade
	accountRepo portsrepo.GLAccountReader
}

// NewPolicyService creates a new PolicyService.
func NewPolicyService(policyRepo portsrepo.PolicyRepositoryFacade, accountRepo portsrepo.GLAccountReader) portssvc.PolicySvcFacade {
	return &policyService{
		policyRepo:  policyRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.PolicySvcFacade = (*policyService)(nil)

func (s *policyService) Get(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error) {
	fields, err := s.policyRepo.FindPolicyFields(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read policy fields", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to read sales posting policy: %w", err)
	}

	policy, found, err := mapping.PolicyFromFields(fields)
	if err != nil {
		s.LogError(ctx, err, "Stored policy is unreadable", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("%w: %w", ErrPolicyInvalid, err)
	}
	if !found {
		return nil, fmt.Errorf("%w for organization %s", ErrPolicyNotFound, organizationID)
	}
	return policy, nil
}

func (s *policyService) Set(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error {
	for role := range policy.Accounts {
		if !domain.IsKnownAccountRole(role) {
			return fmt.Errorf("%w: unknown account role %q", apperrors.ErrValidation, role)
		}
	}
	policy.SchemaVersion = domain.PolicySchemaVersion

	if err := s.policyRepo.ReplacePolicy(ctx, organizationID, policy); err != nil {
		s.LogError(ctx, err, "Failed to store policy", slog.String("organization_id", organizationID))
		return fmt.Errorf("failed to store sales posting policy: %w", err)
	}

	s.LogInfo(ctx, "Sales posting policy stored",
		slog.String("organization_id", organizationID),
		slog.Int("mapped_roles", len(policy.Accounts)))
	return nil
}

func (s *policyService) SuggestMappings(ctx context.Context, organizationID string) (map[domain.AccountRole]string, error) {
	accounts, err := s.accountRepo.ListActiveGLAccounts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GL accounts", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list GL accounts: %w", err)
	}

	suggestions := make(map[domain.AccountRole]string, len(domain.RequiredAccountRoles))
	for _, role := range domain.RequiredAccountRoles {
		if id := matchAccount(accounts, roleSuggestionPatterns[role]); id != "" {
			suggestions[role] = id
		}
	}
	return suggestions, nil
}

func matchAccount(accounts []domain.GLAccount, patterns []string) string {
	for _, pattern := range patterns {
		for _, acc := range accounts {
			if strings.Contains(strings.ToLower(acc.Name), pattern) || strings.Contains(strings.ToLower(acc.Code), pattern) {
				return acc.AccountID
			}
		}
	}
	return ""
}

func (s *policyService) Validate(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) (*domain.PolicyValidation, error) {
	accounts, err := s.accountRepo.ListActiveGLAccounts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GL accounts", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list GL accounts: %w", err)
	}

	active := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		active[acc.AccountID] = true
	}

	result := &domain.PolicyValidation{Errors: []string{}}
	for _, role := range domain.RequiredAccountRoles {
		id := policy.Account(role)
		switch {
		case id == "":
			result.Errors = append(result.Errors, fmt.Sprintf("missing account mapping for %s", role))
		case !active[id]:
			result.Errors = append(result.Errors, fmt.Sprintf("account %s for %s not found or inactive", id, role))
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result, nil
}

func (s *policyService) CreateDefault(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error) {
	suggestions, err := s.SuggestMappings(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	policy := domain.SalesPostingPolicy{
		SchemaVersion: domain.PolicySchemaVersion,
		Accounts:      suggestions,
		Grouping:      domain.PolicyGrouping{ByBranch: true, ByTaxRate: true},
	}

	validation, err := s.Validate(ctx, organizationID, policy)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		s.GetLogger(ctx).Warn("Default policy could not be completed",
			slog.String("organization_id", organizationID),
			slog.Int("error_count", len(validation.Errors)))
		return nil, fmt.Errorf("%w: %s", ErrPolicyInvalid, strings.Join(validation.Errors, "; "))
	}

	if err := s.Set(ctx, organizationID, policy); err != nil {
		return nil, err
	}
	return &policy, nil
}
