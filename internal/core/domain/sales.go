package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesBucket names one of the accumulators of a daily sales summary.
type SalesBucket string

const (
	BucketServiceNet SalesBucket = "serviceNet"
	BucketProductNet SalesBucket = "productNet"
	BucketDiscounts  SalesBucket = "discounts"
	BucketTips       SalesBucket = "tips"
	BucketCash       SalesBucket = "cash"
	BucketCard       SalesBucket = "card"
	BucketGift       SalesBucket = "gift"
)

// SalesTransaction is a posted point-of-sale transaction header.
type SalesTransaction struct {
	TransactionID  string          `json:"transactionID"`
	OrganizationID string          `json:"organizationID"`
	BranchID       string          `json:"branchID"`
	SmartCode      string          `json:"smartCode"`
	Status         string          `json:"status"`
	WhenTS         time.Time       `json:"whenTS"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// SalesTransactionLine is one line of a sales transaction. Metadata carries free-form
// attributes such as vat_amount.
type SalesTransactionLine struct {
	LineID        string          `json:"lineID"`
	TransactionID string          `json:"transactionID"`
	LineNumber    int             `json:"lineNumber"`
	SmartCode     string          `json:"smartCode"`
	LineAmount    decimal.Decimal `json:"lineAmount"`
	Metadata      map[string]any  `json:"metadata"`
}

// SalesTotals holds the nine accumulators of a daily summary.
// Discounts and Returns are absolute values.
type SalesTotals struct {
	ServiceNet decimal.Decimal `json:"serviceNet"`
	ProductNet decimal.Decimal `json:"productNet"`
	VAT        decimal.Decimal `json:"vat"`
	Discounts  decimal.Decimal `json:"discounts"`
	Tips       decimal.Decimal `json:"tips"`
	Cash       decimal.Decimal `json:"cash"`
	Card       decimal.Decimal `json:"card"`
	Gift       decimal.Decimal `json:"gift"`
	Returns    decimal.Decimal `json:"returns"`
}

// IsZero reports whether every accumulator is zero.
func (t SalesTotals) IsZero() bool {
	for _, v := range []decimal.Decimal{t.ServiceNet, t.ProductNet, t.VAT, t.Discounts, t.Tips, t.Cash, t.Card, t.Gift, t.Returns} {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// SalesSummary is the per-branch, per-day reduction of sales lines. It is recomputed on every run.
type SalesSummary struct {
	OrganizationID   string      `json:"organizationID"`
	BranchID         string      `json:"branchID"`
	Day              time.Time   `json:"day"`
	CurrencyCode     string      `json:"currencyCode"`
	Totals           SalesTotals `json:"totals"`
	TransactionCount int         `json:"transactionCount"`
}
