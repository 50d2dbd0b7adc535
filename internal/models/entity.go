package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entity types stored in core_entities that this service reads.
const (
	EntityTypeAccount      = "account"
	EntityTypeFiscalPeriod = "fiscal_period"
	EntityTypeBranch       = "branch"
)

// Organization is a row of core_organizations.
type Organization struct {
	ID               string    `db:"id"`
	OrganizationName string    `db:"organization_name"`
	CurrencyCode     *string   `db:"currency_code"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

// Entity is a row of core_entities.
type Entity struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	EntityType     string    `db:"entity_type"`
	EntityName     string    `db:"entity_name"`
	EntityCode     *string   `db:"entity_code"`
	SmartCode      *string   `db:"smart_code"`
	Status         *string   `db:"status"`
	Metadata       []byte    `db:"metadata"`
	CreatedAt      time.Time `db:"created_at"`
}

// DynamicData is a row of core_dynamic_data.
type DynamicData struct {
	ID                string           `db:"id"`
	OrganizationID    string           `db:"organization_id"`
	EntityID          string           `db:"entity_id"`
	SmartCode         *string          `db:"smart_code"`
	FieldName         string           `db:"field_name"`
	FieldValueText    *string          `db:"field_value_text"`
	FieldValueNumber  *decimal.Decimal `db:"field_value_number"`
	FieldValueBoolean *bool            `db:"field_value_boolean"`
	FieldValueJSON    []byte           `db:"field_value_json"`
	CreatedAt         time.Time        `db:"created_at"`
}
