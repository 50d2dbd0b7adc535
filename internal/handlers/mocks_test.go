package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock SchedulerService ---
type MockSchedulerService struct {
	mock.Mock
}

func (m *MockSchedulerService) RunForAllOrganizations(ctx context.Context, day *time.Time, orgIDs []string) ([]domain.PostingResult, error) {
	args := m.Called(ctx, day, orgIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostingResult), args.Error(1)
}

func (m *MockSchedulerService) PostDailySalesForBranch(ctx context.Context, organizationID, branchID string, day time.Time) domain.PostingResult {
	args := m.Called(ctx, organizationID, branchID, day)
	return args.Get(0).(domain.PostingResult)
}

func (m *MockSchedulerService) IsScheduledTime(now time.Time) bool {
	args := m.Called(now)
	return args.Bool(0)
}

func (m *MockSchedulerService) Config() domain.SchedulerConfig {
	args := m.Called()
	return args.Get(0).(domain.SchedulerConfig)
}

var _ portssvc.SchedulerSvc = (*MockSchedulerService)(nil)

// --- Mock PolicyService ---
type MockPolicyService struct {
	mock.Mock
}

func (m *MockPolicyService) Get(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesPostingPolicy), args.Error(1)
}

func (m *MockPolicyService) Set(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error {
	args := m.Called(ctx, organizationID, policy)
	return args.Error(0)
}

func (m *MockPolicyService) CreateDefault(ctx context.Context, organizationID string) (*domain.SalesPostingPolicy, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesPostingPolicy), args.Error(1)
}

func (m *MockPolicyService) SuggestMappings(ctx context.Context, organizationID string) (map[domain.AccountRole]string, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountRole]string), args.Error(1)
}

func (m *MockPolicyService) Validate(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) (*domain.PolicyValidation, error) {
	args := m.Called(ctx, organizationID, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PolicyValidation), args.Error(1)
}

var _ portssvc.PolicySvcFacade = (*MockPolicyService)(nil)
