package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock SalesTransactionReader ---
type MockSalesRepository struct {
	mock.Mock
}

var _ portsrepo.SalesTransactionReader = (*MockSalesRepository)(nil)

func (m *MockSalesRepository) ListSalesTransactions(ctx context.Context, filters []portsrepo.Filter) ([]domain.SalesTransaction, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesTransaction), args.Error(1)
}

func (m *MockSalesRepository) ListTransactionLines(ctx context.Context, transactionID string) ([]domain.SalesTransactionLine, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesTransactionLine), args.Error(1)
}

// --- Mock OrganizationReader ---
type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationReader = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizationIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockOrganizationRepository) ListBranches(ctx context.Context, organizationID string) ([]domain.Branch, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

// --- Mock FiscalPeriodReader ---
type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodReader = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

// --- Mock JournalRepositoryFacade ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindDailySalesJournal(ctx context.Context, filters []portsrepo.Filter) (*domain.PostedJournal, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedJournal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, payload domain.JournalPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// --- Mock FiscalPeriodGateSvc ---
type MockFiscalPeriodGate struct {
	mock.Mock
}

var _ portssvc.FiscalPeriodGateSvc = (*MockFiscalPeriodGate)(nil)

func (m *MockFiscalPeriodGate) IsOpen(ctx context.Context, organizationID string, date time.Time) (domain.PeriodCheck, error) {
	args := m.Called(ctx, organizationID, date)
	return args.Get(0).(domain.PeriodCheck), args.Error(1)
}

// --- Mock GLAccountReader ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.GLAccountReader = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) ListActiveGLAccounts(ctx context.Context, organizationID string) ([]domain.GLAccount, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GLAccount), args.Error(1)
}

// --- Mock PolicyRepositoryFacade ---
type MockPolicyRepository struct {
	mock.Mock
}

var _ portsrepo.PolicyRepositoryFacade = (*MockPolicyRepository)(nil)

func (m *MockPolicyRepository) FindPolicyFields(ctx context.Context, organizationID string) ([]domain.DynamicField, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DynamicField), args.Error(1)
}

func (m *MockPolicyRepository) ReplacePolicy(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error {
	args := m.Called(ctx, organizationID, policy)
	return args.Error(0)
}
