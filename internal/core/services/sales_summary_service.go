package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/apperrors"
	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_sales_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrencyCode is used when an organization has no display currency.
	DefaultCurrencyCode = "AED"
	// DefaultCurrencyCacheTTL bounds how long a resolved organization currency is reused.
	DefaultCurrencyCacheTTL = 10 * time.Minute

	vatMetadataKey = "vat_amount"
)

// salesSummaryService reduces posted point-of-sale transactions into daily bucket totals.
type salesSummaryService struct {
	BaseService
	salesRepo       portsrepo.SalesTransactionReader
	orgRepo         portsrepo.OrganizationReader
	currencyCache   *cache.Cache
	defaultCurrency string
}

// SalesSummaryOption is a functional option for configuring the sales summary service
type SalesSummaryOption func(*salesSummaryService)

// WithCurrencyCacheTTL sets how long organization currencies are cached.
func WithCurrencyCacheTTL(ttl time.Duration) SalesSummaryOption {
	return func(s *salesSummaryService) {
		s.currencyCache = cache.New(ttl, 2*ttl)
	}
}

// WithDefaultCurrency overrides the fallback currency code.
func WithDefaultCurrency(code string) SalesSummaryOption {
	return func(s *salesSummaryService) {
		if code != "" {
			s.defaultCurrency = strings.ToUpper(code)
		}
	}
}

// NewSalesSummaryService creates a new sales summarizer with the provided options
func NewSalesSummaryService(salesRepo portsrepo.SalesTransactionReader, orgRepo portsrepo.OrganizationReader, options ...SalesSummaryOption) portssvc.SalesSummarizerSvc {
	svc := &salesSummaryService{
		salesRepo:       salesRepo,
		orgRepo:         orgRepo,
		currencyCache:   cache.New(DefaultCurrencyCacheTTL, 2*DefaultCurrencyCacheTTL),
		defaultCurrency: DefaultCurrencyCode,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.SalesSummarizerSvc = (*salesSummaryService)(nil)

func (s *salesSummaryService) Summarize(ctx context.Context, organizationID, branchID string, dayStart, dayEnd time.Time) (*domain.SalesSummary, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("organization_id", organizationID),
		slog.String("branch_id", branchID),
		slog.String("day", domain.FormatDay(dayStart)),
	)

	filters := []portsrepo.Filter{
		portsrepo.Eq(portsrepo.FieldOrganizationID, organizationID),
		portsrepo.Eq(portsrepo.FieldStatus, domain.StatusPosted),
		portsrepo.In(portsrepo.FieldSmartCode, domain.SalesTransactionSmartCodes),
		portsrepo.Gte(portsrepo.FieldTransactionDate, dayStart),
		portsrepo.Lt(portsrepo.FieldTransactionDate, dayEnd),
	}
	// Organizations without branch entities post under their own id and own every transaction.
	if branchID != "" && branchID != organizationID {
		filters = append(filters, portsrepo.Eq(portsrepo.FieldBranchID, branchID))
	}

	txns, err := s.salesRepo.ListSalesTransactions(ctx, filters)
	if err != nil {
		logger.Error("Failed to list sales transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: listing transactions: %w", ErrSummarizeFailed, err)
	}

	var totals domain.SalesTotals
	for _, txn := range txns {
		lines, err := s.salesRepo.ListTransactionLines(ctx, txn.TransactionID)
		if err != nil {
			logger.Error("Failed to list transaction lines", slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: listing lines of %s: %w", ErrSummarizeFailed, txn.TransactionID, err)
		}
		for _, line := range lines {
			accumulateLine(&totals, line)
		}
	}

	currency, err := s.resolveCurrency(ctx, organizationID)
	if err != nil {
		logger.Error("Failed to resolve organization currency", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: resolving currency: %w", ErrSummarizeFailed, err)
	}

	logger.Debug("Daily sales summarized", slog.Int("transaction_count", len(txns)))

	return &domain.SalesSummary{
		OrganizationID:   organizationID,
		BranchID:         branchID,
		Day:              domain.DateOnly(dayStart),
		CurrencyCode:     currency,
		Totals:           totals,
		TransactionCount: len(txns),
	}, nil
}

// accumulateLine adds one line to its bucket. VAT comes from metadata on every line; negative
// non-discount lines are also counted in Returns on top of their home bucket.
func accumulateLine(totals *domain.SalesTotals, line domain.SalesTransactionLine) {
	totals.VAT = totals.VAT.Add(vatFromMetadata(line.Metadata))

	bucket, ok := domain.SalesLineBuckets[line.SmartCode]
	if !ok {
		return
	}

	amount := line.LineAmount
	switch bucket {
	case domain.BucketServiceNet:
		totals.ServiceNet = totals.ServiceNet.Add(amount)
	case domain.BucketProductNet:
		totals.ProductNet = totals.ProductNet.Add(amount)
	case domain.BucketDiscounts:
		totals.Discounts = totals.Discounts.Add(amount.Abs())
	case domain.BucketTips:
		totals.Tips = totals.Tips.Add(amount)
	case domain.BucketCash:
		totals.Cash = totals.Cash.Add(amount)
	case domain.BucketCard:
		totals.Card = totals.Card.Add(amount)
	case domain.BucketGift:
		totals.Gift = totals.Gift.Add(amount)
	}

	if amount.IsNegative() && bucket != domain.BucketDiscounts {
		totals.Returns = totals.Returns.Add(amount.Abs())
	}
}

// vatFromMetadata reads vat_amount, which arrives as a JSON number or a numeric string.
func vatFromMetadata(metadata map[string]any) decimal.Decimal {
	raw, ok := metadata[vatMetadataKey]
	if !ok || raw == nil {
		return decimal.Zero
	}

	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

func (s *salesSummaryService) resolveCurrency(ctx context.Context, organizationID string) (string, error) {
	if cached, found := s.currencyCache.Get(organizationID); found {
		return cached.(string), nil
	}

	currency := s.defaultCurrency
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	switch {
	case err == nil:
		if org.CurrencyCode != "" {
			currency = strings.ToUpper(org.CurrencyCode)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		s.GetLogger(ctx).Warn("Organization not found, using default currency",
			slog.String("organization_id", organizationID),
			slog.String("currency", currency))
	default:
		return "", err
	}

	s.currencyCache.Set(organizationID, currency, cache.DefaultExpiration)
	return currency, nil
}
