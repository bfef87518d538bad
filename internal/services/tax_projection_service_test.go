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

// TaxProjectionServiceTestSuite defines the test suite for the tax
// projection service
type TaxProjectionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockInvoiceRepo *repository_mocks.MockInvoiceRepositoryInterface
	mockExpenseRepo *repository_mocks.MockExpenseRepositoryInterface
	service         TaxProjectionServiceInterface
}

// SetupTest runs before each test
func (s *TaxProjectionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.service = NewTaxProjectionService(s.mockInvoiceRepo, s.mockExpenseRepo)
}

// TearDownTest runs after each test
func (s *TaxProjectionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestTaxProjectionServiceSuite runs the test suite
func TestTaxProjectionServiceSuite(t *testing.T) {
	suite.Run(t, new(TaxProjectionServiceTestSuite))
}

func defaultTaxParams() models.TaxParams {
	return models.TaxParams{
		TargetSalary:        decimal.RequireFromString("3000"),
		TaxablePercentage:   decimal.RequireFromString("78"),
		IncomeTaxRate:       decimal.RequireFromString("15"),
		HealthInsuranceRate: decimal.RequireFromString("26.23"),
	}
}

func (s *TaxProjectionServiceTestSuite) TestGetMonthlyOverview_RequiredRevenue() {
	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Invoice{
			{ID: uuid.New(), Amount: decimal.RequireFromString("4200.00"), IssueDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{
			{ID: uuid.New(), Amount: decimal.RequireFromString("350.00")},
		}, nil)

	overview, err := s.service.GetMonthlyOverview(2024, 3, defaultTaxParams())
	s.NoError(err)
	s.Equal(2024, overview.Year)
	s.Equal(3, overview.Month)
	s.Equal("3000", overview.TargetSalary.String())

	// target / 0.78 = 3846.1538...; tax 450.00 and INPS 786.90 are levied on
	// the taxable portion (3000) and added on top
	s.Equal("5083.05", overview.RequiredRevenue.String())
	s.Equal("4200", overview.ActualInvoiced.String())
	s.Equal("350", overview.ActualExpenses.String())
	s.Equal("883.05", overview.Gap.String())
	s.False(overview.OnTrack)

	// Required revenue exceeds the taxable-income figure alone
	s.True(overview.RequiredRevenue.GreaterThan(decimal.RequireFromString("3846.15")))
}

func (s *TaxProjectionServiceTestSuite) TestGetMonthlyOverview_OnTrack() {
	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Invoice{
			{ID: uuid.New(), Amount: decimal.RequireFromString("6000.00")},
		}, nil)
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{}, nil)

	overview, err := s.service.GetMonthlyOverview(2024, 3, defaultTaxParams())
	s.NoError(err)
	s.True(overview.OnTrack)
	s.True(overview.Gap.IsNegative())
}

func (s *TaxProjectionServiceTestSuite) TestGetMonthlyOverview_ZeroTarget() {
	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Invoice{}, nil)
	s.mockExpenseRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.Expense{}, nil)

	params := defaultTaxParams()
	params.TargetSalary = decimal.Zero

	overview, err := s.service.GetMonthlyOverview(2024, 3, params)
	s.NoError(err)
	s.True(overview.RequiredRevenue.IsZero())
	s.True(overview.OnTrack)
}

func (s *TaxProjectionServiceTestSuite) TestGetMonthlyOverview_InvalidParams() {
	tests := []struct {
		name    string
		mutate  func(*models.TaxParams)
		wantErr error
	}{
		{"taxable percentage above 100", func(p *models.TaxParams) {
			p.TaxablePercentage = decimal.RequireFromString("150")
		}, ErrInvalidTaxablePercentage},
		{"taxable percentage zero", func(p *models.TaxParams) {
			p.TaxablePercentage = decimal.Zero
		}, ErrInvalidTaxablePercentage},
		{"negative target salary", func(p *models.TaxParams) {
			p.TargetSalary = decimal.RequireFromString("-1")
		}, ErrInvalidTargetSalary},
		{"income tax rate above 100", func(p *models.TaxParams) {
			p.IncomeTaxRate = decimal.RequireFromString("101")
		}, ErrInvalidIncomeTaxRate},
		{"negative health insurance rate", func(p *models.TaxParams) {
			p.HealthInsuranceRate = decimal.RequireFromString("-0.01")
		}, ErrInvalidHealthInsuranceRate},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := defaultTaxParams()
			tt.mutate(&params)

			_, err := s.service.GetMonthlyOverview(2024, 3, params)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *TaxProjectionServiceTestSuite) TestGetMonthlyOverview_InvalidPeriod() {
	_, err := s.service.GetMonthlyOverview(2024, 13, defaultTaxParams())
	s.ErrorIs(err, ErrInvalidMonth)

	_, err = s.service.GetMonthlyOverview(1, 3, defaultTaxParams())
	s.ErrorIs(err, ErrInvalidYear)
}
