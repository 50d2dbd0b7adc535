package mapping

import (
	"strings"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/models"
)

// Dynamic field names of fiscal_period entities.
const (
	FiscalFieldStartDate = "start_date"
	FiscalFieldEndDate   = "end_date"
	FiscalFieldStatus    = "status"
)

// ToDomainFiscalPeriod assembles a period from its entity and dynamic fields.
// Unparseable dates are left zero, which makes the period cover nothing.
func ToDomainFiscalPeriod(entity models.Entity, fields []domain.DynamicField) domain.FiscalPeriod {
	p := domain.FiscalPeriod{
		PeriodID:       entity.ID,
		OrganizationID: entity.OrganizationID,
		Name:           entity.EntityName,
		Status:         domain.FiscalPeriodOpen,
	}
	for _, f := range fields {
		if f.Text == nil {
			continue
		}
		switch f.FieldName {
		case FiscalFieldStartDate:
			p.StartDate = parseFieldDate(*f.Text)
		case FiscalFieldEndDate:
			p.EndDate = parseFieldDate(*f.Text)
		case FiscalFieldStatus:
			p.Status = domain.FiscalPeriodStatus(strings.ToLower(strings.TrimSpace(*f.Text)))
		}
	}
	return p
}

// parseFieldDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func parseFieldDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if d, err := domain.ParseDay(s); err == nil {
		return d
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return domain.DateOnly(ts)
	}
	return time.Time{}
}
