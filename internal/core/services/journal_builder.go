package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type postingRule struct {
	role  domain.AccountRole
	debit bool
	total func(domain.SalesTotals) decimal.Decimal
}

// dailySalesRules is the polarity table in emission order: payments, revenue, VAT, discounts, tips.
var dailySalesRules = []postingRule{
	{domain.RoleCashClearing, true, func(t domain.SalesTotals) decimal.Decimal { return t.Cash }},
	{domain.RoleCardClearing, true, func(t domain.SalesTotals) decimal.Decimal { return t.Card }},
	{domain.RoleGiftcardLiability, false, func(t domain.SalesTotals) decimal.Decimal { return t.Gift }},
	{domain.RoleServiceRevenue, false, func(t domain.SalesTotals) decimal.Decimal { return t.ServiceNet }},
	{domain.RoleProductRevenue, false, func(t domain.SalesTotals) decimal.Decimal { return t.ProductNet }},
	{domain.RoleVATLiability, false, func(t domain.SalesTotals) decimal.Decimal { return t.VAT }},
	{domain.RoleDiscountsContra, true, func(t domain.SalesTotals) decimal.Decimal { return t.Discounts }},
	{domain.RoleTipsPayable, false, func(t domain.SalesTotals) decimal.Decimal { return t.Tips }},
}

// DailyPostingTimestamp is the last second of day in UTC, the when_ts of its journal.
func DailyPostingTimestamp(day time.Time) time.Time {
	_, end := domain.DayBounds(day)
	return end.Add(-time.Second)
}

// BuildDailySalesJournal turns a summary into a balanced journal using the policy's account map.
// Non-positive totals produce no line. A residual of 0.01 or more is booked to rounding_diff.
// It performs no I/O and never fails; lines for unmapped roles carry an empty AccountID.
func BuildDailySalesJournal(summary domain.SalesSummary, policy domain.SalesPostingPolicy, postingTS time.Time) domain.JournalPayload {
	day := domain.FormatDay(postingTS)
	lines := make([]domain.JournalLine, 0, len(dailySalesRules)+1)

	newLine := func(role domain.AccountRole, debit bool, amount decimal.Decimal) domain.JournalLine {
		l := domain.JournalLine{
			LineNumber: len(lines) + 1,
			SmartCode:  domain.SmartCodeJournalLineGL,
			AccountID:  policy.Account(role),
			Debit:      decimal.Zero,
			Credit:     decimal.Zero,
			Metadata: domain.JournalLineMetadata{
				Source:      domain.LineSourceDailySales,
				Day:         day,
				AccountType: domain.LineAccountTypeGL,
				Role:        role,
			},
		}
		if debit {
			l.Debit = amount
		} else {
			l.Credit = amount
		}
		return l
	}

	for _, rule := range dailySalesRules {
		amount := rule.total(summary.Totals)
		if !amount.IsPositive() {
			continue
		}
		lines = append(lines, newLine(rule.role, rule.debit, amount))
	}

	diff := accounting.Imbalance(lines)
	if diff.Abs().GreaterThanOrEqual(accounting.BalanceTolerance) {
		// Credit when debits are heavier, debit otherwise.
		lines = append(lines, newLine(domain.RoleRoundingDiff, diff.IsNegative(), diff.Abs()))
	}

	return domain.JournalPayload{
		Header: domain.JournalHeader{
			OrganizationID:  summary.OrganizationID,
			TransactionType: domain.TransactionTypeJournal,
			SmartCode:       domain.SmartCodeDailySalesJournal,
			WhenTS:          postingTS,
			BranchID:        summary.BranchID,
			CurrencyCode:    summary.CurrencyCode,
			Status:          domain.StatusPosted,
			TotalAmount:     accounting.LargerSideTotal(lines),
			Memo:            fmt.Sprintf("Daily sales summary %s (%d transactions)", day, summary.TransactionCount),
		},
		Lines: lines,
	}
}

// UnmappedRoles lists, in sorted order, the roles of payload lines that have no account.
func UnmappedRoles(payload domain.JournalPayload) []domain.AccountRole {
	seen := map[domain.AccountRole]bool{}
	var roles []domain.AccountRole
	for _, l := range payload.Lines {
		if l.AccountID == "" && !seen[l.Metadata.Role] {
			seen[l.Metadata.Role] = true
			roles = append(roles, l.Metadata.Role)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
