package models

import "github.com/shopspring/decimal"

// MonthlyOverview compares the revenue required to clear the target salary
// under the flat-tax regime against what was actually invoiced and spent in
// the month.
type MonthlyOverview struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TargetSalary    decimal.Decimal `json:"target_salary"`
	RequiredRevenue decimal.Decimal `json:"required_revenue"`
	ActualInvoiced  decimal.Decimal `json:"actual_invoiced"`
	ActualExpenses  decimal.Decimal `json:"actual_expenses"`
	Gap             decimal.Decimal `json:"gap"`
	OnTrack         bool            `json:"on_track"`
}
