package domain

// Organization is a tenant of the platform.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currencyCode"` // empty when the organization has no display currency
	Status         string `json:"status"`
}

// Branch is a point-of-sale location of an organization.
type Branch struct {
	BranchID       string `json:"branchID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
}
