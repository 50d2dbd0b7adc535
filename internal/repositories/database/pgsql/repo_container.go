package pgsql

import (
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesRepo:        newPgxSalesRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		FiscalPeriodRepo: newPgxFiscalPeriodRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		PolicyRepo:       newPgxPolicyRepository(dbPool),
		AuditRepo:        newPgxAuditRepository(dbPool),
	}
}
