package dto

import (
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// PolicyGrouping mirrors domain.PolicyGrouping on the wire.
type PolicyGrouping struct {
	ByBranch  bool `json:"by_branch"`
	ByTaxRate bool `json:"by_tax_rate"`
}

// SetPolicyRequest replaces an organization's sales posting policy.
type SetPolicyRequest struct {
	Accounts                 map[string]string `json:"accounts" binding:"required,dive,keys,required,endkeys,required"`
	Grouping                 PolicyGrouping    `json:"grouping"`
	IncludeCOGSFromInventory bool              `json:"include_cogs_from_inventory"`
}

// PolicyResponse is the stored policy of one organization.
type PolicyResponse struct {
	OrganizationID           string            `json:"organization_id"`
	SchemaVersion            int               `json:"schema_version"`
	Accounts                 map[string]string `json:"accounts"`
	Grouping                 PolicyGrouping    `json:"grouping"`
	IncludeCOGSFromInventory bool              `json:"include_cogs_from_inventory"`
}

// PolicyValidationResponse lists every unresolved role.
type PolicyValidationResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// PolicySuggestionsResponse maps roles to suggested account ids; Missing lists roles without a match.
type PolicySuggestionsResponse struct {
	OrganizationID string            `json:"organization_id"`
	Suggestions    map[string]string `json:"suggestions"`
	Missing        []string          `json:"missing"`
}

func (r SetPolicyRequest) ToDomain() domain.SalesPostingPolicy {
	accounts := make(map[domain.AccountRole]string, len(r.Accounts))
	for role, id := range r.Accounts {
		accounts[domain.AccountRole(role)] = id
	}
	return domain.SalesPostingPolicy{
		SchemaVersion:            domain.PolicySchemaVersion,
		Accounts:                 accounts,
		Grouping:                 domain.PolicyGrouping{ByBranch: r.Grouping.ByBranch, ByTaxRate: r.Grouping.ByTaxRate},
		IncludeCOGSFromInventory: r.IncludeCOGSFromInventory,
	}
}

func ToPolicyResponse(organizationID string, p *domain.SalesPostingPolicy) PolicyResponse {
	return PolicyResponse{
		OrganizationID:           organizationID,
		SchemaVersion:            p.SchemaVersion,
		Accounts:                 rolesToStrings(p.Accounts),
		Grouping:                 PolicyGrouping{ByBranch: p.Grouping.ByBranch, ByTaxRate: p.Grouping.ByTaxRate},
		IncludeCOGSFromInventory: p.IncludeCOGSFromInventory,
	}
}

func ToPolicyValidationResponse(v *domain.PolicyValidation) PolicyValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	return PolicyValidationResponse{IsValid: v.IsValid, Errors: errs}
}

func ToPolicySuggestionsResponse(organizationID string, suggestions map[domain.AccountRole]string) PolicySuggestionsResponse {
	missing := []string{}
	for _, role := range domain.RequiredAccountRoles {
		if _, ok := suggestions[role]; !ok {
			missing = append(missing, string(role))
		}
	}
	return PolicySuggestionsResponse{
		OrganizationID: organizationID,
		Suggestions:    rolesToStrings(suggestions),
		Missing:        missing,
	}
}

func rolesToStrings(in map[domain.AccountRole]string) map[string]string {
	out := make(map[string]string, len(in))
	for role, id := range in {
		out[string(role)] = id
	}
	return out
}
