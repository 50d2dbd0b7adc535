package mapping

import (
	"fmt"
	"strings"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/models"
)

// ToDomainOrganization converts a core_organizations row.
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.ID,
		Name:           m.OrganizationName,
		CurrencyCode:   derefString(m.CurrencyCode),
		Status:         m.Status,
	}
}

// ToDomainBranch converts a branch entity.
func ToDomainBranch(m models.Entity) domain.Branch {
	return domain.Branch{
		BranchID:       m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.EntityName,
	}
}

// ToDomainGLAccount converts an account entity, reading ledger_type and is_active from metadata.
func ToDomainGLAccount(m models.Entity) (domain.GLAccount, error) {
	metadata, err := DecodeMetadata(m.Metadata)
	if err != nil {
		return domain.GLAccount{}, fmt.Errorf("account %s: %w", m.ID, err)
	}
	ledgerType, _ := metadata["ledger_type"].(string)
	return domain.GLAccount{
		AccountID:      m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.EntityName,
		Code:           derefString(m.EntityCode),
		LedgerType:     strings.ToUpper(ledgerType),
		IsActive:       truthy(metadata["is_active"]),
	}, nil
}

// truthy accepts the boolean and string encodings of is_active found in entity metadata.
func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		return false
	}
}

// ToDomainDynamicField drops the row identity and keeps the typed value columns.
func ToDomainDynamicField(m models.DynamicData) domain.DynamicField {
	return domain.DynamicField{
		FieldName: m.FieldName,
		Text:      m.FieldValueText,
		Number:    m.FieldValueNumber,
		Boolean:   m.FieldValueBoolean,
		JSON:      m.FieldValueJSON,
	}
}
