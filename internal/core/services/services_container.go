package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, schedulerOpts ...SchedulerOption) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	container.SalesSummary = NewSalesSummaryService(
		repos.SalesRepo,
		repos.OrganizationRepo,
		WithCurrencyCacheTTL(cfg.CurrencyCacheTTL),
		WithDefaultCurrency(cfg.DefaultCurrency),
	)
	container.FiscalPeriod = NewFiscalPeriodService(repos.FiscalPeriodRepo)
	container.Journal = NewJournalPosterService(repos.JournalRepo, container.FiscalPeriod)
	container.Policy = NewPolicyService(repos.PolicyRepo, repos.AccountRepo)

	opts := append([]SchedulerOption{WithAuditLog(repos.AuditRepo)}, schedulerOpts...)
	scheduler, err := NewSchedulerService(
		cfg.Scheduler,
		repos.OrganizationRepo,
		container.Policy,
		container.SalesSummary,
		container.Journal,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	container.Scheduler = scheduler

	return container, nil
}
