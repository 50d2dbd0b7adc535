package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the handlers and the cron binary.
type ServiceContainer struct {
	SalesSummary SalesSummarizerSvc
	FiscalPeriod FiscalPeriodGateSvc
	Journal      JournalPosterSvc
	Policy       PolicySvcFacade
	Scheduler    SchedulerSvc
}
