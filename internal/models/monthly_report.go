package models

import "github.com/shopspring/decimal"

// ReportPeriod is the inclusive date range a report covers, ISO formatted
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportGroup is one calendar day of a worked-hours report: summed hours
// and amount, with per-entry notes preserved in arrival order
type ReportGroup struct {
	Date   string          `json:"date"`
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
	Notes  []string        `json:"notes"`
}

// ReportTotals holds the already-rounded report totals; the renderer does no
// further numeric computation
type ReportTotals struct {
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyReport is the grouped worked-hours report for one client and month,
// consumed unchanged by the report renderer
type MonthlyReport struct {
	Client         Client        `json:"client"`
	Period         ReportPeriod  `json:"period"`
	Entries        []WorkedHour  `json:"entries"`
	GroupedEntries []ReportGroup `json:"grouped_entries"`
	Totals         ReportTotals  `json:"totals"`
}
