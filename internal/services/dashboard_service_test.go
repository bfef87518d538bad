package services

import (
	"testing"
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubMetrics is a no-op MetricsRecorderInterface for tests; the production
// recorder registers on the global prometheus registry and cannot be
// constructed per-test.
type stubMetrics struct{}

func (stubMetrics) IncrementCounter(name string, tags map[string]string) {}
func (stubMetrics) RecordProcessingTime(name string, duration time.Duration) {}

// fixedClock pins "now" for deterministic windows
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// DashboardServiceTestSuite defines the test suite for the dashboard service
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockExpenseRepo  *repository_mocks.MockExpenseRepositoryInterface
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	mockInvoiceRepo  *repository_mocks.MockInvoiceRepositoryInterface
	service          DashboardServiceInterface
	now              time.Time
}

// SetupTest runs before each test
func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	expenseSummaries := NewExpenseSummaryService(s.mockExpenseRepo, s.mockCategoryRepo)
	invoiceSummaries := NewInvoiceSummaryService(s.mockInvoiceRepo)
	s.service = NewDashboardService(expenseSummaries, invoiceSummaries, stubMetrics{}, fixedClock(s.now))
}

// TearDownTest runs after each test
func (s *DashboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) TestGetDashboardSummary_CurrentYearDefault() {
	cat := models.Category{ID: uuid.New(), Name: "Software", Color: "#3B82F6"}

	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.ExpenseFilters) ([]models.Expense, error) {
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			s.Equal("2024-01-01", filters.StartDate.Format(ISODateFormat))
			s.Equal("2024-12-31", filters.EndDate.Format(ISODateFormat))
			return []models.Expense{
				{ID: uuid.New(), CategoryID: cat.ID, Amount: decimal.RequireFromString("300.00")},
			}, nil
		})
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{cat}, nil)
	s.mockInvoiceRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.InvoiceFilters) ([]models.Invoice, error) {
			s.Require().NotNil(filters.Year)
			s.Equal(2024, *filters.Year)
			return []models.Invoice{
				{ID: uuid.New(), Status: models.InvoiceStatusPaid, Amount: decimal.RequireFromString("1000.00")},
				{ID: uuid.New(), Status: models.InvoiceStatusSent, Amount: decimal.RequireFromString("500.00")},
			}, nil
		})

	summary, err := s.service.GetDashboardSummary(nil)
	s.NoError(err)
	s.Equal(2024, summary.Year)
	s.Equal("1500", summary.Invoices.TotalAmount.String())
	s.Equal("1000", summary.Invoices.TotalPaid.String())
	s.Equal("500", summary.Invoices.TotalPending.String())
	s.Equal("300", summary.Expenses.TotalAmount.String())
	s.Equal("1200", summary.Net.String())
}

func (s *DashboardServiceTestSuite) TestGetDashboardSummary_ExplicitYear() {
	year := 2023

	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.ExpenseFilters) ([]models.Expense, error) {
			s.Equal("2023-01-01", filters.StartDate.Format(ISODateFormat))
			return []models.Expense{}, nil
		})
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{}, nil)
	s.mockInvoiceRepo.EXPECT().
		GetWithFilters(models.InvoiceFilters{Year: &year}).
		Return([]models.Invoice{}, nil)

	summary, err := s.service.GetDashboardSummary(&year)
	s.NoError(err)
	s.Equal(2023, summary.Year)
	s.True(summary.Net.IsZero())
}
