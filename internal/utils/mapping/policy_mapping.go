package mapping

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
)

// PolicyFieldName names the dynamic data row that holds the serialized policy.
const PolicyFieldName = "sales_posting_policy"

const (
	legacyAccountsPrefix  = "accounts."
	legacyGroupingBranch  = "grouping.by_branch"
	legacyGroupingTaxRate = "grouping.by_tax_rate"
	legacyIncludeCOGS     = "include_cogs_from_inventory"
)

// PolicyToField serializes a policy into its single dynamic data row.
func PolicyToField(p domain.SalesPostingPolicy) (domain.DynamicField, error) {
	p.SchemaVersion = domain.PolicySchemaVersion
	if p.Accounts == nil {
		p.Accounts = map[domain.AccountRole]string{}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return domain.DynamicField{}, fmt.Errorf("encoding sales posting policy: %w", err)
	}
	return domain.DynamicField{FieldName: PolicyFieldName, JSON: raw}, nil
}

// PolicyFromFields rebuilds a policy from an organization's policy rows. A serialized row wins;
// otherwise legacy dotted-path rows are upgraded to the current schema version.
// found is false when there are no rows at all.
func PolicyFromFields(fields []domain.DynamicField) (policy *domain.SalesPostingPolicy, found bool, err error) {
	if len(fields) == 0 {
		return nil, false, nil
	}

	for _, f := range fields {
		if f.FieldName == PolicyFieldName && len(f.JSON) > 0 {
			p, err := decodePolicy(f.JSON)
			if err != nil {
				return nil, true, err
			}
			return p, true, nil
		}
	}

	return upgradeLegacyPolicy(fields), true, nil
}

func decodePolicy(raw []byte) (*domain.SalesPostingPolicy, error) {
	var p domain.SalesPostingPolicy
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding sales posting policy: %w", err)
	}
	if p.SchemaVersion > domain.PolicySchemaVersion {
		return nil, fmt.Errorf("unsupported sales posting policy schema version %d", p.SchemaVersion)
	}
	p.SchemaVersion = domain.PolicySchemaVersion
	if p.Accounts == nil {
		p.Accounts = map[domain.AccountRole]string{}
	}
	return &p, nil
}

// upgradeLegacyPolicy maps flattened rows such as accounts.cash_clearing onto the struct.
// Unknown field names are ignored.
func upgradeLegacyPolicy(fields []domain.DynamicField) *domain.SalesPostingPolicy {
	p := &domain.SalesPostingPolicy{
		SchemaVersion: domain.PolicySchemaVersion,
		Accounts:      map[domain.AccountRole]string{},
	}

	for _, f := range fields {
		switch {
		case strings.HasPrefix(f.FieldName, legacyAccountsPrefix):
			role := domain.AccountRole(strings.TrimPrefix(f.FieldName, legacyAccountsPrefix))
			if f.Text != nil && *f.Text != "" {
				p.Accounts[role] = *f.Text
			}
		case f.FieldName == legacyGroupingBranch:
			p.Grouping.ByBranch = fieldBool(f)
		case f.FieldName == legacyGroupingTaxRate:
			p.Grouping.ByTaxRate = fieldBool(f)
		case f.FieldName == legacyIncludeCOGS:
			p.IncludeCOGSFromInventory = fieldBool(f)
		}
	}
	return p
}

func fieldBool(f domain.DynamicField) bool {
	if f.Boolean != nil {
		return *f.Boolean
	}
	if f.Text != nil {
		return strings.EqualFold(strings.TrimSpace(*f.Text), "true")
	}
	return false
}
