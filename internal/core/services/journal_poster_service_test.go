package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalPosterServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	journalRepo *MockJournalRepository
	periodGate  *MockFiscalPeriodGate
	poster      portssvc.JournalPosterSvc
	payload     domain.JournalPayload
}

func (s *JournalPosterServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.journalRepo = new(MockJournalRepository)
	s.periodGate = new(MockFiscalPeriodGate)
	s.poster = services.NewJournalPosterService(s.journalRepo, s.periodGate)

	summary := summaryWith(domain.SalesTotals{Cash: dec("100"), ServiceNet: dec("90"), VAT: dec("10")})
	s.payload = services.BuildDailySalesJournal(summary, fullPolicy(), services.DailyPostingTimestamp(businessDay))
}

func (s *JournalPosterServiceTestSuite) TearDownTest() {
	s.journalRepo.AssertExpectations(s.T())
	s.periodGate.AssertExpectations(s.T())
}

func TestJournalPosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalPosterServiceTestSuite))
}

func (s *JournalPosterServiceTestSuite) TestPost_Success() {
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.periodGate.On("IsOpen", s.ctx, "org-1", businessDay).Return(domain.PeriodCheck{IsOpen: true, PeriodID: "2025-03"}, nil).Once()
	s.journalRepo.On("SaveJournal", s.ctx, s.payload).Return("txn-1", nil).Once()

	result, err := s.poster.Post(s.ctx, s.payload)

	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal("txn-1", result.TransactionID)
	s.False(result.AlreadyExists)
}

func (s *JournalPosterServiceTestSuite) TestPost_AlreadyPosted() {
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).
		Return(&domain.PostedJournal{TransactionID: "txn-existing"}, nil).Once()

	result, err := s.poster.Post(s.ctx, s.payload)

	s.Require().NoError(err)
	s.True(result.Success)
	s.True(result.AlreadyExists)
	s.Equal("txn-existing", result.TransactionID)
	s.periodGate.AssertNotCalled(s.T(), "IsOpen", mock.Anything, mock.Anything, mock.Anything)
	s.journalRepo.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *JournalPosterServiceTestSuite) TestPost_ClosedPeriod() {
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.periodGate.On("IsOpen", s.ctx, "org-1", businessDay).
		Return(domain.PeriodCheck{IsOpen: false, PeriodID: "2025-03", Reason: "fiscal period March is closed"}, nil).Once()

	result, err := s.poster.Post(s.ctx, s.payload)

	s.Nil(result)
	s.ErrorIs(err, services.ErrFiscalPeriodClosed)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.ErrorContains(err, "March is closed")
	s.False(services.IsRetryable(err))
	s.journalRepo.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *JournalPosterServiceTestSuite) TestPost_NoFiscalPeriod() {
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.periodGate.On("IsOpen", s.ctx, "org-1", businessDay).
		Return(domain.PeriodCheck{IsOpen: false, Reason: "no fiscal period found"}, nil).Once()

	_, err := s.poster.Post(s.ctx, s.payload)

	s.ErrorIs(err, services.ErrNoFiscalPeriod)
	s.journalRepo.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (s *JournalPosterServiceTestSuite) TestPost_ConcurrentDuplicate() {
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.periodGate.On("IsOpen", s.ctx, "org-1", businessDay).Return(domain.PeriodCheck{IsOpen: true, PeriodID: "p"}, nil).Once()
	s.journalRepo.On("SaveJournal", s.ctx, s.payload).Return("", apperrors.ErrDuplicate).Once()
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).
		Return(&domain.PostedJournal{TransactionID: "txn-winner"}, nil).Once()

	result, err := s.poster.Post(s.ctx, s.payload)

	s.Require().NoError(err)
	s.True(result.AlreadyExists)
	s.Equal("txn-winner", result.TransactionID)
}

func (s *JournalPosterServiceTestSuite) TestPost_LookupErrorIsRetryable() {
	boom := errors.New("connection reset")
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, boom).Once()

	_, err := s.poster.Post(s.ctx, s.payload)

	s.ErrorIs(err, boom)
	s.True(services.IsRetryable(err))
}

func (s *JournalPosterServiceTestSuite) TestPost_SaveError() {
	boom := errors.New("disk full")
	s.journalRepo.On("FindDailySalesJournal", s.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.periodGate.On("IsOpen", s.ctx, "org-1", businessDay).Return(domain.PeriodCheck{IsOpen: true, PeriodID: "p"}, nil).Once()
	s.journalRepo.On("SaveJournal", s.ctx, s.payload).Return("", boom).Once()

	_, err := s.poster.Post(s.ctx, s.payload)

	s.ErrorIs(err, boom)
}

func (s *JournalPosterServiceTestSuite) TestPost_RejectsEmptyJournal() {
	empty := s.payload
	empty.Lines = nil

	_, err := s.poster.Post(s.ctx, empty)

	s.ErrorIs(err, services.ErrEmptyJournal)
	s.journalRepo.AssertNotCalled(s.T(), "FindDailySalesJournal", mock.Anything, mock.Anything)
}

func (s *JournalPosterServiceTestSuite) TestPost_RejectsUnbalancedJournal() {
	unbalanced := s.payload
	unbalanced.Lines = append([]domain.JournalLine(nil), s.payload.Lines...)
	unbalanced.Lines[0].Debit = dec("150")

	_, err := s.poster.Post(s.ctx, unbalanced)

	s.ErrorIs(err, services.ErrJournalUnbalanced)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.journalRepo.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything)
}
