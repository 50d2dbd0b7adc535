package domain

// Smart codes classify every row of the universal transaction tables.
const (
	SmartCodeDailySalesJournal  = "HERA.FINANCE.JOURNAL.DAILY_SALES.v1"
	SmartCodeJournalLineGL      = "HERA.FINANCE.JOURNAL.LINE.GL.V1"
	SmartCodeSalesPostingPolicy = "HERA.FINANCE.POLICY.SALES_POSTING.v1"
	SmartCodeSchedulerLog       = "HERA.FINANCE.SCHEDULER.DAILY_POST.LOG.v1"
)

// SalesTransactionSmartCodes lists the header codes the summarizer treats as point-of-sale sales.
var SalesTransactionSmartCodes = []string{
	"HERA.SALON.POS.SALE.v1",
	"HERA.SALON.POS.TXN.SALE.v1",
	"HERA.RETAIL.POS.SALE.v1",
	"HERA.RESTAURANT.POS.SALE.v1",
}

// SalesLineBuckets maps a transaction line smart code to the accumulator it feeds.
// Codes absent from this table are ignored by the summarizer.
var SalesLineBuckets = map[string]SalesBucket{
	"HERA.SALON.SVC.LINE.STANDARD.v1":        BucketServiceNet,
	"HERA.SALON.POS.LINE.SERVICE.v1":         BucketServiceNet,
	"HERA.SALON.RETAIL.LINE.PRODUCT.v1":      BucketProductNet,
	"HERA.SALON.POS.LINE.PRODUCT.v1":         BucketProductNet,
	"HERA.RETAIL.POS.LINE.PRODUCT.v1":        BucketProductNet,
	"HERA.SALON.POS.LINE.DISCOUNT.v1":        BucketDiscounts,
	"HERA.SALON.POS.ADJUST.DISCOUNT.CART.v1": BucketDiscounts,
	"HERA.SALON.POS.LINE.TIP.v1":             BucketTips,
	"HERA.SALON.POS.TIP.CASH.v1":             BucketTips,
	"HERA.SALON.POS.PAYMENT.CASH.v1":         BucketCash,
	"HERA.SALON.POS.PAYMENT.CARD.v1":         BucketCard,
	"HERA.SALON.POS.PAYMENT.GIFTCARD.v1":     BucketGift,
	"HERA.SALON.POS.PAYMENT.VOUCHER.v1":      BucketGift,
}

// Fixed discriminators written on journal and audit rows.
const (
	TransactionTypeJournal      = "journal"
	TransactionTypeSchedulerLog = "scheduler_log"
	StatusPosted                = "posted"
	LineSourceDailySales        = "daily-sales"
	LineAccountTypeGL           = "gl"
)
