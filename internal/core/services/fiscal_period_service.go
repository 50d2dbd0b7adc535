package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
)

const reasonNoFiscalPeriod = "no fiscal period found"

// fiscalPeriodService decides whether a posting date falls into an open fiscal period.
type fiscalPeriodService struct {
	BaseService
	periodRepo portsrepo.FiscalPeriodReader
}

// NewFiscalPeriodService creates a new fiscal period gate.
func NewFiscalPeriodService(periodRepo portsrepo.FiscalPeriodReader) portssvc.FiscalPeriodGateSvc {
	return &fiscalPeriodService{periodRepo: periodRepo}
}

var _ portssvc.FiscalPeriodGateSvc = (*fiscalPeriodService)(nil)

func (s *fiscalPeriodService) IsOpen(ctx context.Context, organizationID string, date time.Time) (domain.PeriodCheck, error) {
	logger := s.GetLogger(ctx)

	periods, err := s.periodRepo.ListFiscalPeriods(ctx, organizationID)
	if err != nil {
		logger.Error("Failed to list fiscal periods", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		return domain.PeriodCheck{}, fmt.Errorf("failed to list fiscal periods: %w", err)
	}

	for _, p := range periods {
		if !p.Contains(date) {
			continue
		}
		if p.IsClosed() {
			return domain.PeriodCheck{
				IsOpen: false,
				Reason: fmt.Sprintf("fiscal period %s (%s to %s) is closed",
					p.Name, domain.FormatDay(p.StartDate), domain.FormatDay(p.EndDate)),
				PeriodID: p.PeriodID,
			}, nil
		}
		return domain.PeriodCheck{IsOpen: true, PeriodID: p.PeriodID}, nil
	}

	logger.Warn("No fiscal period covers posting date",
		slog.String("organization_id", organizationID),
		slog.String("day", domain.FormatDay(date)))
	return domain.PeriodCheck{IsOpen: false, Reason: reasonNoFiscalPeriod}, nil
}
