package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SalesRepo        SalesTransactionReader
	OrganizationRepo OrganizationReader
	AccountRepo      GLAccountReader
	FiscalPeriodRepo FiscalPeriodReader
	JournalRepo      JournalRepositoryFacade
	PolicyRepo       PolicyRepositoryFacade
	AuditRepo        SchedulerLogWriter
}
