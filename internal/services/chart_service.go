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
	MinChartMonths = 1
	MaxChartMonths = 24
)

var (
	ErrInvalidMonthsCount = errors.New("months must be between 1 and 24")
)

type chartService struct {
	invoiceRepo      repositories.InvoiceRepositoryInterface
	expenseRepo      repositories.ExpenseRepositoryInterface
	expenseSummaries ExpenseSummaryServiceInterface
	clock            Clock
}

func NewChartService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	expenseSummaries ExpenseSummaryServiceInterface,
	clock Clock,
) ChartServiceInterface {
	return &chartService{
		invoiceRepo:      invoiceRepo,
		expenseRepo:      expenseRepo,
		expenseSummaries: expenseSummaries,
		clock:            clock,
	}
}

func (s *chartService) BuildIncomeExpenseSeries(months int, year *int) ([]models.ChartPoint, error) {
	var window []YearMonth

	if year != nil {
		window = YearMonths(*year)
	} else {
		if months < MinChartMonths || months > MaxChartMonths {
			return nil, ErrInvalidMonthsCount
		}
		window = MonthsBack(s.clock(), months)
	}

	startDate, _, err := MonthBounds(window[0].Year, int(window[0].Month))
	if err != nil {
		return nil, err
	}
	last := window[len(window)-1]
	_, endDate, err := MonthBounds(last.Year, int(last.Month))
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.GetByIssueDateRange(startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch invoices for chart series", "error", err)
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	expenses, err := s.expenseRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch expenses for chart series", "error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	series := buildIncomeExpenseSeries(window, invoices, expenses)

	slog.Info("income/expense series generated",
		"months", len(series),
		"from", series[0].Label,
		"to", series[len(series)-1].Label)

	return series, nil
}

// buildIncomeExpenseSeries buckets invoices and expenses by month label and
// zero-fills the window: the series is never sparse and always covers
// exactly the requested months, oldest first. Income is the pre-tax invoice
// amount.
func buildIncomeExpenseSeries(window []YearMonth, invoices []models.Invoice, expenses []models.Expense) []models.ChartPoint {
	income := make(map[string]decimal.Decimal, len(window))
	expense := make(map[string]decimal.Decimal, len(window))

	for i := range invoices {
		inv := &invoices[i]
		label := YearMonth{Year: inv.IssueDate.Year(), Month: inv.IssueDate.Month()}.Label()
		income[label] = income[label].Add(inv.Amount)
	}

	for i := range expenses {
		exp := &expenses[i]
		label := YearMonth{Year: exp.ExpenseDate.Year(), Month: exp.ExpenseDate.Month()}.Label()
		expense[label] = expense[label].Add(exp.Amount)
	}

	series := make([]models.ChartPoint, 0, len(window))
	for _, ym := range window {
		label := ym.Label()
		series = append(series, models.ChartPoint{
			Label:   label,
			Income:  income[label],
			Expense: expense[label],
		})
	}

	return series
}

func (s *chartService) BuildCategoryPie(year *int) ([]models.CategoryBreakdown, error) {
	effectiveYear := s.clock().Year()
	if year != nil {
		effectiveYear = *year
	}

	startDate, endDate := YearBounds(effectiveYear)

	summary, err := s.expenseSummaries.SummarizeExpenses(models.ExpenseFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses for pie chart: %w", err)
	}

	return summary.ByCategory, nil
}
