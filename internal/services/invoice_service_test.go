package services

import (
	"testing"
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"
	"fiscaldesk/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// InvoiceServiceTestSuite defines the test suite for the invoice service
type InvoiceServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockInvoiceRepo *repository_mocks.MockInvoiceRepositoryInterface
	mockClientRepo  *repository_mocks.MockClientRepositoryInterface
	service         InvoiceServiceInterface
	now             time.Time
}

// SetupTest runs before each test
func (s *InvoiceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.mockClientRepo = repository_mocks.NewMockClientRepositoryInterface(s.ctrl)
	s.now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	s.service = NewInvoiceService(s.mockInvoiceRepo, s.mockClientRepo, fixedClock(s.now))
}

// TearDownTest runs after each test
func (s *InvoiceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestInvoiceServiceSuite runs the test suite
func TestInvoiceServiceSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func validInvoiceInput() InvoiceInput {
	return InvoiceInput{
		Number:    "INV-2024-" + gofakeit.DigitN(3),
		Amount:    decimal.RequireFromString("1000.00"),
		TaxRate:   decimal.RequireFromString("22"),
		IssueDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_ComputesDerivedAmounts() {
	input := validInvoiceInput()

	s.mockInvoiceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(invoice *models.Invoice) error {
			s.Equal(models.InvoiceStatusDraft, invoice.Status)
			s.Equal("220", invoice.TaxAmount.String())
			s.Equal("1220", invoice.TotalAmount.String())
			invoice.ID = uuid.New()
			return nil
		})

	invoice, err := s.service.CreateInvoice(input)
	s.NoError(err)
	s.NotEqual(uuid.Nil, invoice.ID)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_UnknownClient() {
	input := validInvoiceInput()
	clientID := uuid.New()
	input.ClientID = &clientID

	s.mockClientRepo.EXPECT().
		GetByID(clientID).
		Return(nil, repositories.ErrClientNotFound)

	_, err := s.service.CreateInvoice(input)
	s.ErrorIs(err, ErrInvalidInvoiceInput)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_InvalidInput() {
	tests := []struct {
		name   string
		mutate func(*InvoiceInput)
	}{
		{"missing number", func(i *InvoiceInput) { i.Number = "" }},
		{"negative amount", func(i *InvoiceInput) { i.Amount = decimal.RequireFromString("-1") }},
		{"tax rate above 100", func(i *InvoiceInput) { i.TaxRate = decimal.RequireFromString("101") }},
		{"due before issue", func(i *InvoiceInput) {
			i.DueDate = i.IssueDate.AddDate(0, 0, -1)
		}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			input := validInvoiceInput()
			tt.mutate(&input)

			_, err := s.service.CreateInvoice(input)
			s.ErrorIs(err, ErrInvalidInvoiceInput)
		})
	}
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	s.mockInvoiceRepo.EXPECT().
		Create(gomock.Any()).
		Return(repositories.ErrInvoiceNumberExists)

	_, err := s.service.CreateInvoice(validInvoiceInput())
	s.ErrorIs(err, ErrInvoiceNumberTaken)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_PaidDefaultsToToday() {
	id := uuid.New()
	invoice := &models.Invoice{
		ID:     id,
		Status: models.InvoiceStatusSent,
	}

	s.mockInvoiceRepo.EXPECT().
		GetByID(id).
		Return(invoice, nil)
	s.mockInvoiceRepo.EXPECT().
		UpdateStatus(id, models.InvoiceStatusPaid, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, status string, paidDate *time.Time) error {
			s.Require().NotNil(paidDate)
			s.Equal("2024-06-15", paidDate.Format(ISODateFormat))
			return nil
		})

	updated, err := s.service.UpdateInvoiceStatus(id, models.InvoiceStatusPaid, nil)
	s.NoError(err)
	s.Equal(models.InvoiceStatusPaid, updated.Status)
	s.NotNil(updated.PaidDate)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_ExplicitPaidDate() {
	id := uuid.New()
	paidDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	invoice := &models.Invoice{ID: id, Status: models.InvoiceStatusOverdue}

	s.mockInvoiceRepo.EXPECT().
		GetByID(id).
		Return(invoice, nil)
	s.mockInvoiceRepo.EXPECT().
		UpdateStatus(id, models.InvoiceStatusPaid, &paidDate).
		Return(nil)

	updated, err := s.service.UpdateInvoiceStatus(id, models.InvoiceStatusPaid, &paidDate)
	s.NoError(err)
	s.Equal(&paidDate, updated.PaidDate)
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_IllegalTransitions() {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"draft to paid", models.InvoiceStatusDraft, models.InvoiceStatusPaid},
		{"draft to overdue", models.InvoiceStatusDraft, models.InvoiceStatusOverdue},
		{"paid is terminal", models.InvoiceStatusPaid, models.InvoiceStatusSent},
		{"overdue back to sent", models.InvoiceStatusOverdue, models.InvoiceStatusSent},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id := uuid.New()
			s.mockInvoiceRepo.EXPECT().
				GetByID(id).
				Return(&models.Invoice{ID: id, Status: tt.from}, nil)

			_, err := s.service.UpdateInvoiceStatus(id, tt.to, nil)
			s.ErrorIs(err, ErrInvalidStatusTransition)
		})
	}
}

func (s *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_UnknownStatus() {
	_, err := s.service.UpdateInvoiceStatus(uuid.New(), "cancelled", nil)
	s.ErrorIs(err, ErrUnknownStatus)
}

func (s *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	id := uuid.New()

	s.mockInvoiceRepo.EXPECT().
		Delete(id).
		Return(repositories.ErrInvoiceNotFound)

	err := s.service.DeleteInvoice(id)
	s.ErrorIs(err, ErrInvoiceNotFound)
}
