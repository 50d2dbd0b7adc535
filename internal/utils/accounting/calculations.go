package accounting

import (
	"fmt"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumDebitsCredits totals both sides of a set of journal lines.
func SumDebitsCredits(lines []domain.JournalLine) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// Imbalance returns sum(debit) - sum(credit).
func Imbalance(lines []domain.JournalLine) decimal.Decimal {
	debits, credits := SumDebitsCredits(lines)
	return debits.Sub(credits)
}

// IsBalanced reports whether the lines balance to within BalanceTolerance (exclusive).
func IsBalanced(lines []domain.JournalLine) bool {
	return Imbalance(lines).Abs().LessThan(BalanceTolerance)
}

// LargerSideTotal sums max(debit, credit) over the lines. For a balanced journal this is the size
// of one side.
func LargerSideTotal(lines []domain.JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.Max(l.Debit, l.Credit))
	}
	return total
}

// ValidateJournalLines checks that every line hits an account, carries exactly one positive side,
// and that the lines balance.
func ValidateJournalLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal must have at least two lines, got %d", len(lines))
	}

	for _, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("line %d has no account", l.LineNumber)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("line %d has a negative amount", l.LineNumber)
		}
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			return fmt.Errorf("line %d must carry exactly one of debit or credit", l.LineNumber)
		}
	}

	if !IsBalanced(lines) {
		return fmt.Errorf("journal lines do not balance: difference is %s", Imbalance(lines).String())
	}

	return nil
}
