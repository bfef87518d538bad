package models

import "github.com/shopspring/decimal"

const (
	LimitStatusSafe     = "safe"
	LimitStatusWarning  = "warning"
	LimitStatusExceeded = "exceeded"
)

// AnnualLimitStatus tracks invoiced revenue for one calendar year against
// the flat-tax regime's regulatory ceiling. Every invoice issued in the year
// counts toward the total regardless of payment status.
type AnnualLimitStatus struct {
	Year           int             `json:"year"`
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	Limit          decimal.Decimal `json:"limit"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentage_used"`
	Status         string          `json:"status"`
}
