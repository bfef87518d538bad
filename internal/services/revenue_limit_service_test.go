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

// RevenueLimitServiceTestSuite defines the test suite for the revenue limit
// service
type RevenueLimitServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockInvoiceRepo *repository_mocks.MockInvoiceRepositoryInterface
	service         RevenueLimitServiceInterface
}

// SetupTest runs before each test
func (s *RevenueLimitServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	s.service = NewRevenueLimitService(s.mockInvoiceRepo, fixedClock(now))
}

// TearDownTest runs after each test
func (s *RevenueLimitServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestRevenueLimitServiceSuite runs the test suite
func TestRevenueLimitServiceSuite(t *testing.T) {
	suite.Run(t, new(RevenueLimitServiceTestSuite))
}

func (s *RevenueLimitServiceTestSuite) expectInvoicedTotal(amounts ...string) {
	invoices := make([]models.Invoice, 0, len(amounts))
	for _, amount := range amounts {
		invoices = append(invoices, models.Invoice{
			ID:     uuid.New(),
			Amount: decimal.RequireFromString(amount),
			Status: models.InvoiceStatusDraft,
		})
	}

	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		Return(invoices, nil)
}

func (s *RevenueLimitServiceTestSuite) TestStatusBands() {
	tests := []struct {
		name       string
		total      string
		wantStatus string
	}{
		{"well under", "40000.00", models.LimitStatusSafe},
		{"just under warning", "67999.99", models.LimitStatusSafe},
		{"exactly 80 percent", "68000.00", models.LimitStatusWarning},
		{"between bands", "75000.00", models.LimitStatusWarning},
		{"exactly at ceiling", "85000.00", models.LimitStatusWarning},
		{"just over ceiling", "85000.01", models.LimitStatusExceeded},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectInvoicedTotal(tt.total)

			status, err := s.service.GetAnnualRevenueLimit(nil)
			s.NoError(err)
			s.Equal(tt.wantStatus, status.Status)
		})
	}
}

func (s *RevenueLimitServiceTestSuite) TestGetAnnualRevenueLimit_Fields() {
	s.expectInvoicedTotal("42500.00")

	status, err := s.service.GetAnnualRevenueLimit(nil)
	s.NoError(err)
	s.Equal(2024, status.Year)
	s.Equal("42500", status.TotalInvoiced.String())
	s.Equal("85000", status.Limit.String())
	s.Equal("42500", status.Remaining.String())
	s.Equal("50", status.PercentageUsed.String())
	s.Equal(models.LimitStatusSafe, status.Status)
}

func (s *RevenueLimitServiceTestSuite) TestGetAnnualRevenueLimit_RemainingClampedAtZero() {
	s.expectInvoicedTotal("90000.00")

	status, err := s.service.GetAnnualRevenueLimit(nil)
	s.NoError(err)
	s.True(status.Remaining.IsZero())
	s.Equal(models.LimitStatusExceeded, status.Status)
}

func (s *RevenueLimitServiceTestSuite) TestGetAnnualRevenueLimit_SumsRegardlessOfStatus() {
	s.expectInvoicedTotal("30000.00", "30000.00", "10000.00")

	status, err := s.service.GetAnnualRevenueLimit(nil)
	s.NoError(err)
	s.Equal("70000", status.TotalInvoiced.String())
	s.Equal(models.LimitStatusWarning, status.Status)
}

func (s *RevenueLimitServiceTestSuite) TestGetAnnualRevenueLimit_ExplicitYear() {
	year := 2023

	s.mockInvoiceRepo.EXPECT().
		GetByIssueDateRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(start, end time.Time) ([]models.Invoice, error) {
			s.Equal("2023-01-01", start.Format(ISODateFormat))
			s.Equal("2023-12-31", end.Format(ISODateFormat))
			return []models.Invoice{}, nil
		})

	status, err := s.service.GetAnnualRevenueLimit(&year)
	s.NoError(err)
	s.Equal(2023, status.Year)
	s.True(status.TotalInvoiced.IsZero())
	s.Equal(models.LimitStatusSafe, status.Status)
}
