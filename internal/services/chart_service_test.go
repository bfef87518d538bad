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

// ChartServiceTestSuite defines the test suite for the chart service
type ChartServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockInvoiceRepo  *repository_mocks.MockInvoiceRepositoryInterface
	mockExpenseRepo  *repository_mocks.MockExpenseRepositoryInterface
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          ChartServiceInterface
	now              time.Time
}

// SetupTest runs before each test
func (s *ChartServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	expenseSummaries := NewExpenseSummaryService(s.mockExpenseRepo, s.mockCategoryRepo)
	s.service = NewChartService(s.mockInvoiceRepo, s.mockExpenseRepo, expenseSummaries, fixedClock(s.now))
}

// TearDownTest runs after each test
func (s *ChartServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestChartServiceSuite runs the test suite
func TestChartServiceSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}

func (s *ChartServiceTestSuite) TestBuildIncomeExpenseSeries_ZeroFilled() {
	// No data at all: the window must still contain exactly 6 points,
	// ending at the current month
	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Invoice{}, nil)
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{}, nil)

	series, err := s.service.BuildIncomeExpenseSeries(6, nil)
	s.NoError(err)
	s.Require().Len(series, 6)

	s.Equal("2024-01", series[0].Label)
	s.Equal("2024-06", series[5].Label)
	for _, point := range series {
		s.True(point.Income.IsZero(), "income for %s", point.Label)
		s.True(point.Expense.IsZero(), "expense for %s", point.Label)
	}
}

func (s *ChartServiceTestSuite) TestBuildIncomeExpenseSeries_BucketsByMonth() {
	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Invoice{
			{ID: uuid.New(), Amount: decimal.RequireFromString("1000.00"), IssueDate: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), Amount: decimal.RequireFromString("500.00"), IssueDate: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)},
		}, nil)
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{
			{ID: uuid.New(), Amount: decimal.RequireFromString("120.00"), ExpenseDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	series, err := s.service.BuildIncomeExpenseSeries(3, nil)
	s.NoError(err)
	s.Require().Len(series, 3)

	s.Equal("2024-04", series[0].Label)
	s.True(series[0].Income.IsZero())

	s.Equal("2024-05", series[1].Label)
	s.Equal("1500", series[1].Income.String())
	s.True(series[1].Expense.IsZero())

	s.Equal("2024-06", series[2].Label)
	s.True(series[2].Income.IsZero())
	s.Equal("120", series[2].Expense.String())
}

func (s *ChartServiceTestSuite) TestBuildIncomeExpenseSeries_YearView() {
	year := 2023

	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(start, end time.Time) ([]models.Invoice, error) {
			s.Equal("2023-01-01", start.Format(ISODateFormat))
			s.Equal("2023-12-31", end.Format(ISODateFormat))
			return []models.Invoice{}, nil
		})
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{}, nil)

	series, err := s.service.BuildIncomeExpenseSeries(6, &year)
	s.NoError(err)
	s.Require().Len(series, 12)
	s.Equal("2023-01", series[0].Label)
	s.Equal("2023-12", series[11].Label)
}

func (s *ChartServiceTestSuite) TestBuildIncomeExpenseSeries_MonthsOutOfRange() {
	_, err := s.service.BuildIncomeExpenseSeries(0, nil)
	s.ErrorIs(err, ErrInvalidMonthsCount)

	_, err = s.service.BuildIncomeExpenseSeries(25, nil)
	s.ErrorIs(err, ErrInvalidMonthsCount)
}

func (s *ChartServiceTestSuite) TestBuildCategoryPie() {
	cat := models.Category{ID: uuid.New(), Name: "Software", Color: "#3B82F6"}

	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{
			{ID: uuid.New(), CategoryID: cat.ID, Amount: decimal.RequireFromString("80.00")},
		}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{cat}, nil)

	breakdown, err := s.service.BuildCategoryPie(nil)
	s.NoError(err)
	s.Require().Len(breakdown, 1)
	s.Equal("Software", breakdown[0].CategoryName)
	s.Equal("100", breakdown[0].Percentage.String())
}
