package services

import (
	"errors"
	"testing"
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseSummaryServiceTestSuite defines the test suite for the expense
// summary service
type ExpenseSummaryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockExpenseRepo  *repository_mocks.MockExpenseRepositoryInterface
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          ExpenseSummaryServiceInterface
}

// SetupTest runs before each test
func (s *ExpenseSummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewExpenseSummaryService(s.mockExpenseRepo, s.mockCategoryRepo)
}

// TearDownTest runs after each test
func (s *ExpenseSummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExpenseSummaryServiceSuite runs the test suite
func TestExpenseSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseSummaryServiceTestSuite))
}

func (s *ExpenseSummaryServiceTestSuite) TestSummarizeExpenses_Breakdown() {
	software := models.Category{ID: uuid.New(), Name: "Software", Color: "#3B82F6"}
	hardware := models.Category{ID: uuid.New(), Name: "Hardware", Color: "#EF4444"}

	expenses := []models.Expense{
		{ID: uuid.New(), CategoryID: software.ID, Amount: decimal.RequireFromString("100.00")},
		{ID: uuid.New(), CategoryID: software.ID, Amount: decimal.RequireFromString("50.00")},
		{ID: uuid.New(), CategoryID: hardware.ID, Amount: decimal.RequireFromString("250.00")},
	}

	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(expenses, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{hardware, software}, nil)

	summary, err := s.service.SummarizeExpenses(models.ExpenseFilters{})
	s.NoError(err)
	s.Equal(3, summary.TotalCount)
	s.Equal("400", summary.TotalAmount.String())

	// Breakdown is sorted by total descending
	s.Require().Len(summary.ByCategory, 2)
	s.Equal("Hardware", summary.ByCategory[0].CategoryName)
	s.Equal("250", summary.ByCategory[0].TotalAmount.String())
	s.Equal(1, summary.ByCategory[0].ExpenseCount)
	s.Equal("62.5", summary.ByCategory[0].Percentage.String())

	s.Equal("Software", summary.ByCategory[1].CategoryName)
	s.Equal("150", summary.ByCategory[1].TotalAmount.String())
	s.Equal(2, summary.ByCategory[1].ExpenseCount)
	s.Equal("37.5", summary.ByCategory[1].Percentage.String())
}

func (s *ExpenseSummaryServiceTestSuite) TestSummarizeExpenses_Empty() {
	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{{ID: uuid.New(), Name: gofakeit.ProductName()}}, nil)

	summary, err := s.service.SummarizeExpenses(models.ExpenseFilters{})
	s.NoError(err)
	s.Equal(0, summary.TotalCount)
	s.True(summary.TotalAmount.IsZero())
	s.Empty(summary.ByCategory)
}

func (s *ExpenseSummaryServiceTestSuite) TestSummarizeExpenses_InvertedRange() {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.SummarizeExpenses(models.ExpenseFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *ExpenseSummaryServiceTestSuite) TestSummarizeExpenses_RepoError() {
	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.SummarizeExpenses(models.ExpenseFilters{})
	s.Error(err)
	s.Contains(err.Error(), "failed to fetch expenses")
}

// Pre-rounded stored amounts are summed as-is; percentages are the only
// derived figures.
func (s *ExpenseSummaryServiceTestSuite) TestSummarizeExpenses_PercentageRounding() {
	cat := models.Category{ID: uuid.New(), Name: "Travel", Color: "#10B981"}
	other := models.Category{ID: uuid.New(), Name: "Other", Color: "#888888"}

	expenses := []models.Expense{
		{ID: uuid.New(), CategoryID: cat.ID, Amount: decimal.RequireFromString("1.00")},
		{ID: uuid.New(), CategoryID: other.ID, Amount: decimal.RequireFromString("2.00")},
	}

	s.mockExpenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(expenses, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{cat, other}, nil)

	summary, err := s.service.SummarizeExpenses(models.ExpenseFilters{})
	s.NoError(err)
	s.Require().Len(summary.ByCategory, 2)
	s.Equal("66.7", summary.ByCategory[0].Percentage.String())
	s.Equal("33.3", summary.ByCategory[1].Percentage.String())
}
