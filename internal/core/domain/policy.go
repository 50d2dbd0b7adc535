package domain

import "github.com/shopspring/decimal"

// AccountRole is a semantic GL bucket that a sales posting policy maps to a concrete account.
type AccountRole string

const (
	RoleServiceRevenue    AccountRole = "service_revenue"
	RoleProductRevenue    AccountRole = "product_revenue"
	RoleVATLiability      AccountRole = "vat_liability"
	RoleDiscountsContra   AccountRole = "discounts_contra"
	RoleTipsPayable       AccountRole = "tips_payable"
	RoleCashClearing      AccountRole = "cash_clearing"
	RoleCardClearing      AccountRole = "card_clearing"
	RoleGiftcardLiability AccountRole = "giftcard_liability"
	RoleRoundingDiff      AccountRole = "rounding_diff"
)

// RequiredAccountRoles lists every role a valid policy must map, in reporting order.
var RequiredAccountRoles = []AccountRole{
	RoleServiceRevenue,
	RoleProductRevenue,
	RoleVATLiability,
	RoleDiscountsContra,
	RoleTipsPayable,
	RoleCashClearing,
	RoleCardClearing,
	RoleGiftcardLiability,
	RoleRoundingDiff,
}

// IsKnownAccountRole reports whether role is one of the required roles.
func IsKnownAccountRole(role AccountRole) bool {
	for _, r := range RequiredAccountRoles {
		if r == role {
			return true
		}
	}
	return false
}

// PolicySchemaVersion is the version written with every stored policy.
// Version 0 denotes the legacy flattened dotted-path rows.
const PolicySchemaVersion = 1

// PolicyGrouping is persisted with the policy but not used by the journal builder.
type PolicyGrouping struct {
	ByBranch  bool `json:"by_branch"`
	ByTaxRate bool `json:"by_tax_rate"`
}

// SalesPostingPolicy maps account roles to GL account ids for one organization.
type SalesPostingPolicy struct {
	SchemaVersion            int                    `json:"schema_version"`
	Accounts                 map[AccountRole]string `json:"accounts"`
	Grouping                 PolicyGrouping         `json:"grouping"`
	IncludeCOGSFromInventory bool                   `json:"include_cogs_from_inventory"`
}

// Account returns the account id mapped to role, or "" when unmapped.
func (p SalesPostingPolicy) Account(role AccountRole) string {
	if p.Accounts == nil {
		return ""
	}
	return p.Accounts[role]
}

// PolicyValidation is the outcome of checking a policy against the chart of accounts.
type PolicyValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// DynamicField is one core_dynamic_data row. Exactly one of the value fields is normally set.
type DynamicField struct {
	FieldName string
	Text      *string
	Number    *decimal.Decimal
	Boolean   *bool
	JSON      []byte
}
