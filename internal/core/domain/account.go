package domain

// LedgerTypeGL marks accounts that belong to the general ledger.
const LedgerTypeGL = "GL"

// GLAccount is an active general ledger account entity of an organization.
type GLAccount struct {
	AccountID      string `json:"accountID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	LedgerType     string `json:"ledgerType"`
	IsActive       bool   `json:"isActive"`
}
