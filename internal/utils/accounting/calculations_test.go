package accounting

import (
	"testing"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(n int, account string, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		LineNumber: n,
		AccountID:  account,
		Debit:      decimal.RequireFromString(debit),
		Credit:     decimal.RequireFromString(credit),
	}
}

func TestSumDebitsCredits(t *testing.T) {
	lines := []domain.JournalLine{
		line(1, "cash", "300", "0"),
		line(2, "card", "225", "0"),
		line(3, "rev", "0", "500"),
		line(4, "vat", "0", "25"),
	}

	debits, credits := SumDebitsCredits(lines)
	assert.True(t, debits.Equal(decimal.NewFromInt(525)))
	assert.True(t, credits.Equal(decimal.NewFromInt(525)))
	assert.True(t, IsBalanced(lines))
	assert.True(t, LargerSideTotal(lines).Equal(decimal.NewFromInt(525)))
}

func TestIsBalanced_Tolerance(t *testing.T) {
	tests := []struct {
		name     string
		debit    string
		credit   string
		expected bool
	}{
		{"exact", "100", "100", true},
		{"below tolerance", "100.009", "100", true},
		{"at tolerance", "100.01", "100", false},
		{"credit heavy", "100", "100.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []domain.JournalLine{line(1, "a", tt.debit, "0"), line(2, "b", "0", tt.credit)}
			assert.Equal(t, tt.expected, IsBalanced(lines))
		})
	}
}

func TestValidateJournalLines(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "a", "10", "0"), line(2, "b", "0", "10")})
		assert.NoError(t, err)
	})

	t.Run("too few lines", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "a", "10", "0")})
		assert.ErrorContains(t, err, "at least two lines")
	})

	t.Run("missing account", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "", "10", "0"), line(2, "b", "0", "10")})
		assert.ErrorContains(t, err, "has no account")
	})

	t.Run("both sides set", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "a", "10", "10"), line(2, "b", "0", "0")})
		assert.ErrorContains(t, err, "exactly one of debit or credit")
	})

	t.Run("negative amount", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "a", "-10", "0"), line(2, "b", "0", "-10")})
		assert.ErrorContains(t, err, "negative amount")
	})

	t.Run("unbalanced", func(t *testing.T) {
		err := ValidateJournalLines([]domain.JournalLine{line(1, "a", "10", "0"), line(2, "b", "0", "9")})
		assert.ErrorContains(t, err, "do not balance")
	})
}
