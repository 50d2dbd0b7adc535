package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/SscSPs/daily_sales_posting/internal/utils/mapping"
	"github.com/google/uuid"
)

// Operation names used with FailNext.
const (
	OpListSales        = "ListSalesTransactions"
	OpListLines        = "ListTransactionLines"
	OpFindOrganization = "FindOrganizationByID"
	OpListBranches     = "ListBranches"
	OpListFiscal       = "ListFiscalPeriods"
	OpFindJournal      = "FindDailySalesJournal"
	OpSaveJournal      = "SaveJournal"
	OpSaveSchedulerLog = "SaveSchedulerLog"
)

// StoredJournal is a journal persisted by SaveJournal.
type StoredJournal struct {
	TransactionID string
	Payload       domain.JournalPayload
}

type journalKey struct {
	organizationID string
	branchID       string
	day            string
}

type injectedFailure struct {
	err       error
	remaining int
}

// Store is an in-memory implementation of every repository port. It backs tests and the
// server when no database URL is configured.
type Store struct {
	mu            sync.RWMutex
	organizations map[string]domain.Organization
	branches      map[string][]domain.Branch
	accounts      map[string][]domain.GLAccount
	fiscalPeriods map[string][]domain.FiscalPeriod
	sales         []domain.SalesTransaction
	salesLines    map[string][]domain.SalesTransactionLine
	journals      []StoredJournal
	journalsByDay map[journalKey]string
	policyFields  map[string][]domain.DynamicField
	schedulerLogs []domain.PostingResult
	failures      map[string]*injectedFailure
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		organizations: map[string]domain.Organization{},
		branches:      map[string][]domain.Branch{},
		accounts:      map[string][]domain.GLAccount{},
		fiscalPeriods: map[string][]domain.FiscalPeriod{},
		salesLines:    map[string][]domain.SalesTransactionLine{},
		journalsByDay: map[journalKey]string{},
		policyFields:  map[string][]domain.DynamicField{},
		failures:      map[string]*injectedFailure{},
	}
}

var (
	_ portsrepo.SalesTransactionReader  = (*Store)(nil)
	_ portsrepo.OrganizationReader      = (*Store)(nil)
	_ portsrepo.GLAccountReader         = (*Store)(nil)
	_ portsrepo.FiscalPeriodReader      = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade = (*Store)(nil)
	_ portsrepo.PolicyRepositoryFacade  = (*Store)(nil)
	_ portsrepo.SchedulerLogWriter      = (*Store)(nil)
)

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesRepo:        s,
		OrganizationRepo: s,
		AccountRepo:      s,
		FiscalPeriodRepo: s,
		JournalRepo:      s,
		PolicyRepo:       s,
		AuditRepo:        s,
	}
}

// FailNext makes the next count calls of op return err.
func (s *Store) FailNext(op string, err error, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = &injectedFailure{err: err, remaining: count}
}

// injected must be called with the lock held.
func (s *Store) injected(op string) error {
	f, ok := s.failures[op]
	if !ok || f.remaining <= 0 {
		return nil
	}
	f.remaining--
	return f.err
}

// --- seeding ---

// AddOrganization registers an organization.
func (s *Store) AddOrganization(org domain.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if org.Status == "" {
		org.Status = "active"
	}
	s.organizations[org.OrganizationID] = org
}

// AddBranch registers a branch entity.
func (s *Store) AddBranch(b domain.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches[b.OrganizationID] = append(s.branches[b.OrganizationID], b)
}

// AddGLAccount registers an account entity.
func (s *Store) AddGLAccount(acc domain.GLAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acc.OrganizationID] = append(s.accounts[acc.OrganizationID], acc)
}

// AddFiscalPeriod registers a fiscal period entity.
func (s *Store) AddFiscalPeriod(p domain.FiscalPeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fiscalPeriods[p.OrganizationID] = append(s.fiscalPeriods[p.OrganizationID], p)
}

// AddSalesTransaction stores a sales header with its lines, assigning missing ids.
func (s *Store) AddSalesTransaction(txn domain.SalesTransaction, lines ...domain.SalesTransactionLine) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	for i := range lines {
		lines[i].TransactionID = txn.TransactionID
		if lines[i].LineID == "" {
			lines[i].LineID = uuid.NewString()
		}
		if lines[i].LineNumber == 0 {
			lines[i].LineNumber = i + 1
		}
	}
	s.sales = append(s.sales, txn)
	s.salesLines[txn.TransactionID] = append(s.salesLines[txn.TransactionID], lines...)
	return txn.TransactionID
}

// SetPolicyFields stores raw policy rows, e.g. legacy dotted-path fields.
func (s *Store) SetPolicyFields(organizationID string, fields []domain.DynamicField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policyFields[organizationID] = append([]domain.DynamicField(nil), fields...)
}

// Journals returns every journal written so far, in write order.
func (s *Store) Journals() []StoredJournal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StoredJournal(nil), s.journals...)
}

// SchedulerLogs returns every audit record written so far.
func (s *Store) SchedulerLogs() []domain.PostingResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PostingResult(nil), s.schedulerLogs...)
}

// --- SalesTransactionReader ---

func (s *Store) ListSalesTransactions(ctx context.Context, filters []portsrepo.Filter) ([]domain.SalesTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpListSales); err != nil {
		return nil, err
	}

	var out []domain.SalesTransaction
	for _, txn := range s.sales {
		ok, err := matchAll(filters, salesLookup(txn))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WhenTS.Before(out[j].WhenTS) })
	return out, nil
}

func salesLookup(txn domain.SalesTransaction) fieldLookup {
	return func(field string) (any, bool) {
		switch field {
		case portsrepo.FieldOrganizationID:
			return txn.OrganizationID, true
		case portsrepo.FieldBranchID:
			return txn.BranchID, true
		case portsrepo.FieldStatus:
			return txn.Status, true
		case portsrepo.FieldSmartCode:
			return txn.SmartCode, true
		case portsrepo.FieldTransactionDate:
			return txn.WhenTS, true
		}
		return nil, false
	}
}

func (s *Store) ListTransactionLines(ctx context.Context, transactionID string) ([]domain.SalesTransactionLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpListLines); err != nil {
		return nil, err
	}
	lines := append([]domain.SalesTransactionLine(nil), s.salesLines[transactionID]...)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].LineNumber < lines[j].LineNumber })
	return lines, nil
}

// --- OrganizationReader ---

func (s *Store) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpFindOrganization); err != nil {
		return nil, err
	}
	org, ok := s.organizations[organizationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &org, nil
}

func (s *Store) ListOrganizationIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.organizations))
	for id, org := range s.organizations {
		if strings.EqualFold(org.Status, "active") {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) ListBranches(ctx context.Context, organizationID string) ([]domain.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpListBranches); err != nil {
		return nil, err
	}
	return append([]domain.Branch(nil), s.branches[organizationID]...), nil
}

// --- GLAccountReader ---

func (s *Store) ListActiveGLAccounts(ctx context.Context, organizationID string) ([]domain.GLAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.GLAccount
	for _, acc := range s.accounts[organizationID] {
		if acc.IsActive && strings.EqualFold(acc.LedgerType, domain.LedgerTypeGL) {
			out = append(out, acc)
		}
	}
	return out, nil
}

// --- FiscalPeriodReader ---

func (s *Store) ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpListFiscal); err != nil {
		return nil, err
	}
	return append([]domain.FiscalPeriod(nil), s.fiscalPeriods[organizationID]...), nil
}

// --- JournalRepositoryFacade ---

func (s *Store) FindDailySalesJournal(ctx context.Context, filters []portsrepo.Filter) (*domain.PostedJournal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpFindJournal); err != nil {
		return nil, err
	}

	for _, j := range s.journals {
		ok, err := matchAll(filters, journalLookup(j.Payload.Header))
		if err != nil {
			return nil, err
		}
		if ok {
			return &domain.PostedJournal{
				TransactionID:  j.TransactionID,
				OrganizationID: j.Payload.Header.OrganizationID,
				BranchID:       j.Payload.Header.BranchID,
				WhenTS:         j.Payload.Header.WhenTS,
				TotalAmount:    j.Payload.Header.TotalAmount,
				LineCount:      len(j.Payload.Lines),
			}, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func journalLookup(h domain.JournalHeader) fieldLookup {
	return func(field string) (any, bool) {
		switch field {
		case portsrepo.FieldOrganizationID:
			return h.OrganizationID, true
		case portsrepo.FieldBranchID:
			return h.BranchID, true
		case portsrepo.FieldSmartCode:
			return h.SmartCode, true
		case portsrepo.FieldStatus:
			return h.Status, true
		case portsrepo.FieldTransactionType:
			return h.TransactionType, true
		case portsrepo.FieldTransactionDate:
			return h.WhenTS, true
		}
		return nil, false
	}
}

// SaveJournal stores header and lines together. A second journal for the same organization,
// branch and day is rejected with apperrors.ErrDuplicate.
func (s *Store) SaveJournal(ctx context.Context, payload domain.JournalPayload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpSaveJournal); err != nil {
		return "", err
	}

	key := journalKey{
		organizationID: payload.Header.OrganizationID,
		branchID:       payload.Header.BranchID,
		day:            domain.FormatDay(payload.BusinessDay()),
	}
	if _, exists := s.journalsByDay[key]; exists {
		return "", fmt.Errorf("daily sales journal for %s/%s on %s: %w", key.organizationID, key.branchID, key.day, apperrors.ErrDuplicate)
	}

	id := uuid.NewString()
	payload.Lines = append([]domain.JournalLine(nil), payload.Lines...)
	s.journals = append(s.journals, StoredJournal{TransactionID: id, Payload: payload})
	s.journalsByDay[key] = id
	return id, nil
}

// --- PolicyRepositoryFacade ---

func (s *Store) FindPolicyFields(ctx context.Context, organizationID string) ([]domain.DynamicField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DynamicField(nil), s.policyFields[organizationID]...), nil
}

func (s *Store) ReplacePolicy(ctx context.Context, organizationID string, policy domain.SalesPostingPolicy) error {
	field, err := mapping.PolicyToField(policy)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policyFields[organizationID] = []domain.DynamicField{field}
	return nil
}

// --- SchedulerLogWriter ---

func (s *Store) SaveSchedulerLog(ctx context.Context, result domain.PostingResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpSaveSchedulerLog); err != nil {
		return err
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now().UTC()
	}
	s.schedulerLogs = append(s.schedulerLogs, result)
	return nil
}
