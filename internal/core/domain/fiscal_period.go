package domain

import (
	"strings"
	"time"
)

// FiscalPeriodStatus is the lock state of a fiscal period.
type FiscalPeriodStatus string

const (
	FiscalPeriodOpen   FiscalPeriodStatus = "open"
	FiscalPeriodClosed FiscalPeriodStatus = "closed"
)

// FiscalPeriod is read from fiscal_period entities and their dynamic fields.
// StartDate and EndDate are UTC dates; a zero value means the field was missing.
type FiscalPeriod struct {
	PeriodID       string             `json:"periodID"`
	OrganizationID string             `json:"organizationID"`
	Name           string             `json:"name"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	Status         FiscalPeriodStatus `json:"status"`
}

// Contains returns true if day falls within [StartDate, EndDate], both inclusive.
func (p FiscalPeriod) Contains(day time.Time) bool {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return false
	}
	d := DateOnly(day)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// IsClosed reports whether the period is locked for posting.
func (p FiscalPeriod) IsClosed() bool {
	return strings.EqualFold(string(p.Status), string(FiscalPeriodClosed))
}

// PeriodCheck is the answer of the fiscal period gate.
// PeriodID is empty when no period covers the date.
type PeriodCheck struct {
	IsOpen   bool   `json:"isOpen"`
	Reason   string `json:"reason,omitempty"`
	PeriodID string `json:"periodID,omitempty"`
}
