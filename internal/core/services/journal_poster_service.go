package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/utils/accounting"
)

// journalPosterService writes daily journals once per organization, branch and day.
type journalPosterService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	periodGate  portssvc.FiscalPeriodGateSvc
}

// NewJournalPosterService creates a new JournalPosterService.
func NewJournalPosterService(journalRepo portsrepo.JournalRepositoryFacade, periodGate portssvc.FiscalPeriodGateSvc) portssvc.JournalPosterSvc {
	return &journalPosterService{
		journalRepo: journalRepo,
		periodGate:  periodGate,
	}
}

var _ portssvc.JournalPosterSvc = (*journalPosterService)(nil)

func (s *journalPosterService) Post(ctx context.Context, payload domain.JournalPayload) (*domain.PostResult, error) {
	header := payload.Header
	day := payload.BusinessDay()
	logger := s.GetLogger(ctx).With(
		slog.String("organization_id", header.OrganizationID),
		slog.String("branch_id", header.BranchID),
		slog.String("day", domain.FormatDay(day)),
	)

	if len(payload.Lines) == 0 {
		return nil, ErrEmptyJournal
	}
	if err := accounting.ValidateJournalLines(payload.Lines); err != nil {
		logger.Warn("Refusing to post invalid journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrJournalUnbalanced, err)
	}

	existing, err := s.findExisting(ctx, payload)
	if err == nil {
		logger.Info("Daily sales journal already posted", slog.String("transaction_id", existing.TransactionID))
		return &domain.PostResult{Success: true, TransactionID: existing.TransactionID, AlreadyExists: true}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up existing journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up existing journal: %w", err)
	}

	check, err := s.periodGate.IsOpen(ctx, header.OrganizationID, day)
	if err != nil {
		return nil, err
	}
	if !check.IsOpen {
		logger.Warn("Posting blocked by fiscal period", slog.String("reason", check.Reason))
		if check.PeriodID == "" {
			return nil, ErrNoFiscalPeriod
		}
		return nil, fmt.Errorf("%w: %s", ErrFiscalPeriodClosed, check.Reason)
	}

	transactionID, err := s.journalRepo.SaveJournal(ctx, payload)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// A concurrent run won the unique index; report its journal.
		existing, findErr := s.findExisting(ctx, payload)
		if findErr != nil {
			return nil, fmt.Errorf("journal reported duplicate but could not be read back: %w", findErr)
		}
		logger.Info("Daily sales journal posted concurrently", slog.String("transaction_id", existing.TransactionID))
		return &domain.PostResult{Success: true, TransactionID: existing.TransactionID, AlreadyExists: true}, nil
	}
	if err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Daily sales journal posted",
		slog.String("transaction_id", transactionID),
		slog.Int("line_count", len(payload.Lines)),
		slog.String("total_amount", header.TotalAmount.String()))

	return &domain.PostResult{Success: true, TransactionID: transactionID}, nil
}

func (s *journalPosterService) findExisting(ctx context.Context, payload domain.JournalPayload) (*domain.PostedJournal, error) {
	dayStart, dayEnd := domain.DayBounds(payload.Header.WhenTS)
	return s.journalRepo.FindDailySalesJournal(ctx, []portsrepo.Filter{
		portsrepo.Eq(portsrepo.FieldOrganizationID, payload.Header.OrganizationID),
		portsrepo.Eq(portsrepo.FieldSmartCode, domain.SmartCodeDailySalesJournal),
		portsrepo.Eq(portsrepo.FieldBranchID, payload.Header.BranchID),
		portsrepo.Gte(portsrepo.FieldTransactionDate, dayStart),
		portsrepo.Lt(portsrepo.FieldTransactionDate, dayEnd),
	})
}
