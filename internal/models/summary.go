package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBreakdown is one category slice of an expense summary
type CategoryBreakdown struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Color        string          `json:"color"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ExpenseCount int             `json:"expense_count"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// ExpenseSummary contains aggregated expense data, optionally filtered by
// category and date range
type ExpenseSummary struct {
	TotalCount  int                 `json:"total_count"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	ByCategory  []CategoryBreakdown `json:"by_category"`
}

// InvoiceSummary contains aggregated invoice data split by payment status.
// All sums are over the pre-tax invoice amount.
type InvoiceSummary struct {
	TotalCount   int             `json:"total_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`
}

// DashboardSummary composes the invoice and expense summaries for one
// calendar year
type DashboardSummary struct {
	Year     int             `json:"year"`
	Invoices InvoiceSummary  `json:"invoices"`
	Expenses ExpenseSummary  `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// ChartPoint is one month of the income-vs-expense series
type ChartPoint struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
