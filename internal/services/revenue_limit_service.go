package services

import (
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/shopspring/decimal"
)

// The regime forfettario ceases to apply above this yearly revenue; the
// ceiling is regulatory, not a user setting.
var annualRevenueCeiling = decimal.NewFromInt(85000)

// warningRatio is the fraction of the ceiling at which the status flips
// from safe to warning.
var warningRatio = decimal.NewFromFloat(0.8)

type revenueLimitService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	clock       Clock
}

func NewRevenueLimitService(invoiceRepo repositories.InvoiceRepositoryInterface, clock Clock) RevenueLimitServiceInterface {
	return &revenueLimitService{
		invoiceRepo: invoiceRepo,
		clock:       clock,
	}
}

func (s *revenueLimitService) GetAnnualRevenueLimit(year *int) (*models.AnnualLimitStatus, error) {
	effectiveYear := s.clock().Year()
	if year != nil {
		effectiveYear = *year
	}

	startDate, endDate := YearBounds(effectiveYear)

	invoices, err := s.invoiceRepo.GetByIssueDateRange(startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch invoices for revenue limit",
			"year", effectiveYear,
			"error", err)
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	// The regulatory count is over issued revenue: payment status is irrelevant
	totalInvoiced := decimal.Zero
	for i := range invoices {
		totalInvoiced = totalInvoiced.Add(invoices[i].Amount)
	}

	status := buildAnnualLimitStatus(effectiveYear, totalInvoiced)

	slog.Info("annual revenue limit computed",
		"year", effectiveYear,
		"total_invoiced", status.TotalInvoiced.String(),
		"status", status.Status)

	return status, nil
}

func buildAnnualLimitStatus(year int, totalInvoiced decimal.Decimal) *models.AnnualLimitStatus {
	remaining := annualRevenueCeiling.Sub(totalInvoiced)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	// Band boundaries: exactly 80% is already a warning, exactly 100% still is
	status := models.LimitStatusSafe
	switch {
	case totalInvoiced.GreaterThan(annualRevenueCeiling):
		status = models.LimitStatusExceeded
	case totalInvoiced.GreaterThanOrEqual(annualRevenueCeiling.Mul(warningRatio)):
		status = models.LimitStatusWarning
	}

	return &models.AnnualLimitStatus{
		Year:           year,
		TotalInvoiced:  totalInvoiced,
		Limit:          annualRevenueCeiling,
		Remaining:      remaining,
		PercentageUsed: PercentageOf(totalInvoiced, annualRevenueCeiling),
		Status:         status,
	}
}
