package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownInvoiceStatus = errors.New("unknown invoice status filter")
)

type invoiceSummaryService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
}

func NewInvoiceSummaryService(invoiceRepo repositories.InvoiceRepositoryInterface) InvoiceSummaryServiceInterface {
	return &invoiceSummaryService{invoiceRepo: invoiceRepo}
}

func (s *invoiceSummaryService) SummarizeInvoices(filters models.InvoiceFilters) (*models.InvoiceSummary, error) {
	if filters.Status != nil && !models.IsValidInvoiceStatus(*filters.Status) {
		return nil, ErrUnknownInvoiceStatus
	}

	invoices, err := s.invoiceRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("failed to fetch invoices for summary", "error", err)
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	summary := buildInvoiceSummary(invoices)

	slog.Info("invoice summary generated",
		"invoice_count", summary.TotalCount,
		"total_amount", summary.TotalAmount.String())

	return summary, nil
}

// buildInvoiceSummary sums the pre-tax invoice amounts, split by payment
// status. Draft invoices contribute to the total only.
func buildInvoiceSummary(invoices []models.Invoice) *models.InvoiceSummary {
	summary := &models.InvoiceSummary{
		TotalAmount:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TotalOverdue: decimal.Zero,
	}

	for i := range invoices {
		inv := &invoices[i]

		summary.TotalCount++
		summary.TotalAmount = summary.TotalAmount.Add(inv.Amount)

		switch inv.Status {
		case models.InvoiceStatusPaid:
			summary.TotalPaid = summary.TotalPaid.Add(inv.Amount)
		case models.InvoiceStatusSent:
			summary.TotalPending = summary.TotalPending.Add(inv.Amount)
		case models.InvoiceStatusOverdue:
			summary.TotalOverdue = summary.TotalOverdue.Add(inv.Amount)
		}
	}

	return summary
}
