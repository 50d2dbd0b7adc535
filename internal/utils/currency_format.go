package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of minor-unit digits used when rendering posted amounts.
const MoneyPrecision = 2

// FormatMoney renders an amount rounded to MoneyPrecision, e.g. 12.345 becomes "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
