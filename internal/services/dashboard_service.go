package services

import (
	"fmt"
	"log/slog"
	"time"

	"fiscaldesk/internal/models"
)

type dashboardService struct {
	expenseSummaries ExpenseSummaryServiceInterface
	invoiceSummaries InvoiceSummaryServiceInterface
	metrics          MetricsRecorderInterface
	clock            Clock
}

func NewDashboardService(
	expenseSummaries ExpenseSummaryServiceInterface,
	invoiceSummaries InvoiceSummaryServiceInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) DashboardServiceInterface {
	return &dashboardService{
		expenseSummaries: expenseSummaries,
		invoiceSummaries: invoiceSummaries,
		metrics:          metrics,
		clock:            clock,
	}
}

func (s *dashboardService) GetDashboardSummary(year *int) (*models.DashboardSummary, error) {
	started := s.clock()

	effectiveYear := started.Year()
	if year != nil {
		effectiveYear = *year
	}

	startDate, endDate := YearBounds(effectiveYear)

	expenses, err := s.expenseSummaries.SummarizeExpenses(models.ExpenseFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	invoices, err := s.invoiceSummaries.SummarizeInvoices(models.InvoiceFilters{
		Year: &effectiveYear,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize invoices: %w", err)
	}

	summary := &models.DashboardSummary{
		Year:     effectiveYear,
		Invoices: *invoices,
		Expenses: *expenses,
		Net:      invoices.TotalAmount.Sub(expenses.TotalAmount),
	}

	s.metrics.IncrementCounter("dashboard_summary_generated", map[string]string{
		"year": fmt.Sprintf("%d", effectiveYear),
	})
	s.metrics.RecordProcessingTime("dashboard_summary", time.Since(started))

	slog.Info("dashboard summary generated",
		"year", effectiveYear,
		"net", summary.Net.String())

	return summary, nil
}
