package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(id, start, end string, status domain.FiscalPeriodStatus) domain.FiscalPeriod {
	s, _ := domain.ParseDay(start)
	e, _ := domain.ParseDay(end)
	return domain.FiscalPeriod{PeriodID: id, OrganizationID: "org-1", Name: id, StartDate: s, EndDate: e, Status: status}
}

func TestFiscalPeriodService_IsOpen(t *testing.T) {
	ctx := context.Background()
	periods := []domain.FiscalPeriod{
		period("2025-01", "2025-01-01", "2025-01-31", domain.FiscalPeriodClosed),
		period("2025-02", "2025-02-01", "2025-02-28", "CLOSED"),
		period("2025-03", "2025-03-01", "2025-03-31", domain.FiscalPeriodOpen),
		{PeriodID: "broken", Status: domain.FiscalPeriodOpen},
	}

	tests := []struct {
		name       string
		date       time.Time
		wantOpen   bool
		wantPeriod string
		wantReason string
	}{
		{"open period", time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC), true, "2025-03", ""},
		{"inclusive end date", time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), true, "2025-03", ""},
		{"closed period", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), false, "2025-01", "fiscal period 2025-01 (2025-01-01 to 2025-01-31) is closed"},
		{"closed status in capitals", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false, "2025-02", "is closed"},
		{"no covering period", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), false, "", "no fiscal period found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockFiscalPeriodRepository)
			repo.On("ListFiscalPeriods", ctx, "org-1").Return(periods, nil).Once()
			svc := services.NewFiscalPeriodService(repo)

			check, err := svc.IsOpen(ctx, "org-1", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, check.IsOpen)
			assert.Equal(t, tt.wantPeriod, check.PeriodID)
			assert.Contains(t, check.Reason, tt.wantReason)
			repo.AssertExpectations(t)
		})
	}
}

func TestFiscalPeriodService_NeverCaches(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFiscalPeriodRepository)
	svc := services.NewFiscalPeriodService(repo)

	repo.On("ListFiscalPeriods", ctx, "org-1").Return([]domain.FiscalPeriod{period("p", "2025-03-01", "2025-03-31", domain.FiscalPeriodOpen)}, nil).Once()
	repo.On("ListFiscalPeriods", ctx, "org-1").Return([]domain.FiscalPeriod{period("p", "2025-03-01", "2025-03-31", domain.FiscalPeriodClosed)}, nil).Once()

	first, err := svc.IsOpen(ctx, "org-1", businessDay)
	require.NoError(t, err)
	second, err := svc.IsOpen(ctx, "org-1", businessDay)
	require.NoError(t, err)

	assert.True(t, first.IsOpen)
	assert.False(t, second.IsOpen)
	repo.AssertNumberOfCalls(t, "ListFiscalPeriods", 2)
}

func TestFiscalPeriodService_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFiscalPeriodRepository)
	boom := errors.New("timeout")
	repo.On("ListFiscalPeriods", ctx, "org-1").Return(nil, boom).Once()

	_, err := services.NewFiscalPeriodService(repo).IsOpen(ctx, "org-1", businessDay)
	assert.ErrorIs(t, err, boom)
	assert.True(t, services.IsRetryable(err))
}
