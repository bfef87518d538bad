package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	MinProjectionYear = 2000
	MaxProjectionYear = 2100
)

var (
	ErrInvalidYear                = errors.New("year must be between 2000 and 2100")
	ErrInvalidTargetSalary        = errors.New("target salary must be non-negative")
	ErrInvalidTaxablePercentage   = errors.New("taxable percentage must be greater than 0 and at most 100")
	ErrInvalidIncomeTaxRate       = errors.New("income tax rate must be between 0 and 100")
	ErrInvalidHealthInsuranceRate = errors.New("health insurance rate must be between 0 and 100")
)

type taxProjectionService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	expenseRepo repositories.ExpenseRepositoryInterface
}

func NewTaxProjectionService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
) TaxProjectionServiceInterface {
	return &taxProjectionService{
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *taxProjectionService) GetMonthlyOverview(year, month int, params models.TaxParams) (*models.MonthlyOverview, error) {
	if err := validateProjectionParams(year, params); err != nil {
		return nil, err
	}

	startDate, endDate, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.GetByIssueDateRange(startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch invoices for monthly overview",
			"year", year,
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	expenses, err := s.expenseRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch expenses for monthly overview",
			"year", year,
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	actualInvoiced := decimal.Zero
	for i := range invoices {
		actualInvoiced = actualInvoiced.Add(invoices[i].Amount)
	}

	actualExpenses := decimal.Zero
	for i := range expenses {
		actualExpenses = actualExpenses.Add(expenses[i].Amount)
	}

	requiredRevenue := requiredMonthlyRevenue(params)

	overview := &models.MonthlyOverview{
		Year:            year,
		Month:           month,
		TargetSalary:    params.TargetSalary,
		RequiredRevenue: requiredRevenue,
		ActualInvoiced:  actualInvoiced,
		ActualExpenses:  actualExpenses,
		Gap:             requiredRevenue.Sub(actualInvoiced),
		OnTrack:         actualInvoiced.GreaterThanOrEqual(requiredRevenue),
	}

	slog.Info("monthly overview generated",
		"year", year,
		"month", month,
		"required_revenue", overview.RequiredRevenue.String(),
		"on_track", overview.OnTrack)

	return overview, nil
}

// requiredMonthlyRevenue back-solves the revenue needed to clear the target
// salary under the flat-tax regime: the target is inflated by the inverse of
// the taxable fraction, then the substitute income tax and INPS contribution
// are levied on the taxable portion of that figure and added on top.
//
// Note the asymmetry: the target is treated as the non-taxable-adjusted
// base, not as net-in-pocket income, so the result overshoots a plain
// "net = gross - tax" model. This mirrors the established dashboard
// behavior; changing it would shift every historical projection.
func requiredMonthlyRevenue(params models.TaxParams) decimal.Decimal {
	taxableIncome := params.TargetSalary.Div(params.TaxablePercentage.Div(oneHundred))
	taxableBase := taxableIncome.Mul(params.TaxablePercentage).Div(oneHundred)

	incomeTax := RoundMoney(taxableBase.Mul(params.IncomeTaxRate).Div(oneHundred))
	healthInsurance := RoundMoney(taxableBase.Mul(params.HealthInsuranceRate).Div(oneHundred))

	return RoundMoney(taxableIncome.Add(incomeTax).Add(healthInsurance))
}

func validateProjectionParams(year int, params models.TaxParams) error {
	if year < MinProjectionYear || year > MaxProjectionYear {
		return ErrInvalidYear
	}

	if params.TargetSalary.IsNegative() {
		return ErrInvalidTargetSalary
	}

	if params.TaxablePercentage.LessThanOrEqual(decimal.Zero) || params.TaxablePercentage.GreaterThan(oneHundred) {
		return ErrInvalidTaxablePercentage
	}

	if params.IncomeTaxRate.IsNegative() || params.IncomeTaxRate.GreaterThan(oneHundred) {
		return ErrInvalidIncomeTaxRate
	}

	if params.HealthInsuranceRate.IsNegative() || params.HealthInsuranceRate.GreaterThan(oneHundred) {
		return ErrInvalidHealthInsuranceRate
	}

	return nil
}
