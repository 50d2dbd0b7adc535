package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Sleeper pauses between retries. It returns early with ctx.Err() when ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// schedulerService runs the daily sales posting pipeline for every organization and branch,
// strictly sequentially.
type schedulerService struct {
	BaseService
	cfg        domain.SchedulerConfig
	location   *time.Location
	orgRepo    portsrepo.OrganizationReader
	policySvc  portssvc.PolicyReaderSvc
	summarizer portssvc.SalesSummarizerSvc
	poster     portssvc.JournalPosterSvc
	auditRepo  portsrepo.SchedulerLogWriter
	now        func() time.Time
	sleep      Sleeper
}

// SchedulerOption is a functional option for configuring the scheduler
type SchedulerOption func(*schedulerService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SchedulerOption {
	return func(s *schedulerService) {
		s.now = now
	}
}

// WithSleeper replaces the context-aware sleep used between retries.
func WithSleeper(sleep Sleeper) SchedulerOption {
	return func(s *schedulerService) {
		s.sleep = sleep
	}
}

// WithAuditLog records every result as a scheduler_log transaction after each run.
func WithAuditLog(repo portsrepo.SchedulerLogWriter) SchedulerOption {
	return func(s *schedulerService) {
		s.auditRepo = repo
	}
}

// NewSchedulerService creates a new scheduler. It fails when the configured timezone cannot be loaded.
func NewSchedulerService(
	cfg domain.SchedulerConfig,
	orgRepo portsrepo.OrganizationReader,
	policySvc portssvc.PolicyReaderSvc,
	summarizer portssvc.SalesSummarizerSvc,
	poster portssvc.JournalPosterSvc,
	options ...SchedulerOption,
) (portssvc.SchedulerSvc, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Timezone, err)
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}

	svc := &schedulerService{
		cfg:        cfg,
		location:   location,
		orgRepo:    orgRepo,
		policySvc:  policySvc,
		summarizer: summarizer,
		poster:     poster,
		now:        time.Now,
		sleep:      sleepContext,
	}

	for _, option := range options {
		option(svc)
	}

	return svc, nil
}

var _ portssvc.SchedulerSvc = (*schedulerService)(nil)

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *schedulerService) Config() domain.SchedulerConfig {
	return s.cfg
}

func (s *schedulerService) IsScheduledTime(now time.Time) bool {
	return now.In(s.location).Format("15:04") == s.cfg.TargetTime
}

func (s *schedulerService) RunForAllOrganizations(ctx context.Context, day *time.Time, orgIDs []string) ([]domain.PostingResult, error) {
	target := domain.PreviousDay(s.now())
	if day != nil {
		target = domain.DateOnly(*day)
	}
	logger := s.GetLogger(ctx).With(slog.String("day", domain.FormatDay(target)))

	ids, err := s.organizationIDs(ctx, orgIDs)
	if err != nil {
		logger.Error("Failed to list organizations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	logger.Info("Daily sales posting run started", slog.Int("organization_count", len(ids)))

	results := make([]domain.PostingResult, 0, len(ids))
	for _, orgID := range ids {
		branches, err := s.branchIDs(ctx, orgID)
		if err != nil {
			logger.Error("Failed to list branches", slog.String("organization_id", orgID), slog.String("error", err.Error()))
			results = append(results, domain.PostingResult{
				OrganizationID: orgID,
				BranchID:       orgID,
				Day:            domain.FormatDay(target),
				Error:          fmt.Sprintf("failed to list branches: %v", err),
				TotalAmount:    decimal.Zero,
				Timestamp:      s.now().UTC(),
			})
			continue
		}
		for _, branchID := range branches {
			results = append(results, s.PostDailySalesForBranch(ctx, orgID, branchID, target))
		}
	}

	s.recordAudit(ctx, results)

	summary := domain.SummarizeResults(results)
	logger.Info("Daily sales posting run finished",
		slog.Int("total", summary.Total),
		slog.Int("successful", summary.Successful),
		slog.Int("failed", summary.Failed),
		slog.String("total_amount", summary.TotalAmount.String()))

	return results, nil
}

// organizationIDs resolves explicit ids, then configured ids, then every known organization.
func (s *schedulerService) organizationIDs(ctx context.Context, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if len(s.cfg.OrganizationIDs) > 0 {
		return s.cfg.OrganizationIDs, nil
	}
	return s.orgRepo.ListOrganizationIDs(ctx)
}

// branchIDs falls back to the organization id when the organization has no branch entities.
func (s *schedulerService) branchIDs(ctx context.Context, organizationID string) ([]string, error) {
	branches, err := s.orgRepo.ListBranches(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return []string{organizationID}, nil
	}
	ids := make([]string, 0, len(branches))
	for _, b := range branches {
		ids = append(ids, b.BranchID)
	}
	return ids, nil
}

type postingOutcome struct {
	transactionID    string
	alreadyPosted    bool
	skipReason       string
	totalAmount      decimal.Decimal
	transactionCount int
}

func (s *schedulerService) PostDailySalesForBranch(ctx context.Context, organizationID, branchID string, day time.Time) domain.PostingResult {
	day = domain.DateOnly(day)
	logger := s.GetLogger(ctx).With(
		slog.String("organization_id", organizationID),
		slog.String("branch_id", branchID),
		slog.String("day", domain.FormatDay(day)),
	)

	result := domain.PostingResult{
		OrganizationID: organizationID,
		BranchID:       branchID,
		Day:            domain.FormatDay(day),
		TotalAmount:    decimal.Zero,
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.RetryAttempts; attempt++ {
		result.Attempts = attempt
		attemptLogger := logger.With(slog.Int("attempt", attempt))

		outcome, err := s.postOnce(ctx, organizationID, branchID, day)
		if err == nil {
			result.Success = true
			result.TransactionID = outcome.transactionID
			result.AlreadyPosted = outcome.alreadyPosted
			result.TotalAmount = outcome.totalAmount
			result.TransactionCount = outcome.transactionCount
			if outcome.skipReason != "" {
				result.Skipped = true
				result.SkipReason = outcome.skipReason
				attemptLogger.Info("Nothing to post", slog.String("reason", outcome.skipReason))
			}
			result.Timestamp = s.now().UTC()
			return result
		}

		lastErr = err
		retryable := IsRetryable(err)
		attemptLogger.Warn("Daily sales posting attempt failed",
			slog.String("error", err.Error()),
			slog.Bool("retryable", retryable))

		if !retryable || attempt == s.cfg.RetryAttempts {
			break
		}
		if sleepErr := s.sleep(ctx, s.cfg.RetryDelay); sleepErr != nil {
			lastErr = fmt.Errorf("%w (retry aborted: %v)", err, sleepErr)
			break
		}
	}

	logger.Error("Daily sales posting failed", slog.String("error", lastErr.Error()), slog.Int("attempts", result.Attempts))
	result.Error = lastErr.Error()
	result.Timestamp = s.now().UTC()
	return result
}

func (s *schedulerService) postOnce(ctx context.Context, organizationID, branchID string, day time.Time) (postingOutcome, error) {
	if err := ctx.Err(); err != nil {
		return postingOutcome{}, err
	}

	policy, err := s.policySvc.Get(ctx, organizationID)
	if err != nil {
		return postingOutcome{}, err
	}

	dayStart, dayEnd := domain.DayBounds(day)
	summary, err := s.summarizer.Summarize(ctx, organizationID, branchID, dayStart, dayEnd)
	if err != nil {
		return postingOutcome{}, err
	}

	outcome := postingOutcome{totalAmount: decimal.Zero, transactionCount: summary.TransactionCount}
	if summary.Totals.IsZero() {
		outcome.skipReason = domain.SkipReasonNoSales
		return outcome, nil
	}

	payload := BuildDailySalesJournal(*summary, *policy, DailyPostingTimestamp(day))
	// Refund-only days leave no positive bucket, so the builder emits no lines.
	if len(payload.Lines) == 0 {
		outcome.skipReason = domain.SkipReasonNoPostableAmounts
		return outcome, nil
	}
	if roles := UnmappedRoles(payload); len(roles) > 0 {
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		return postingOutcome{}, fmt.Errorf("%w: missing account mapping for %s", ErrPolicyInvalid, strings.Join(names, ", "))
	}

	posted, err := s.poster.Post(ctx, payload)
	if err != nil {
		return postingOutcome{}, err
	}

	outcome.transactionID = posted.TransactionID
	outcome.alreadyPosted = posted.AlreadyExists
	outcome.totalAmount = payload.Header.TotalAmount
	return outcome, nil
}

// recordAudit stores one log row per result. Failures are logged and dropped, and a cancelled run
// is still recorded.
func (s *schedulerService) recordAudit(ctx context.Context, results []domain.PostingResult) {
	if s.auditRepo == nil {
		return
	}
	auditCtx := context.WithoutCancel(ctx)
	for _, r := range results {
		if err := s.auditRepo.SaveSchedulerLog(auditCtx, r); err != nil {
			s.GetLogger(ctx).Error("Failed to write scheduler audit log",
				slog.String("organization_id", r.OrganizationID),
				slog.String("branch_id", r.BranchID),
				slog.String("error", err.Error()))
		}
	}
}

