package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNumberTaken      = errors.New("invoice number already in use")
	ErrInvalidInvoiceInput     = errors.New("invalid invoice input")
	ErrInvalidStatusTransition = errors.New("invoice status transition not allowed")
	ErrUnknownStatus           = errors.New("unknown invoice status")
)

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	clientRepo  repositories.ClientRepositoryInterface
	clock       Clock
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	clock Clock,
) InvoiceServiceInterface {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		clock:       clock,
	}
}

func validateInvoiceInput(input InvoiceInput) error {
	if input.Number == "" {
		return fmt.Errorf("%w: number is required", ErrInvalidInvoiceInput)
	}
	if input.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInvoiceInput)
	}
	if input.TaxRate.IsNegative() || input.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", ErrInvalidInvoiceInput)
	}
	if input.IssueDate.IsZero() || input.DueDate.IsZero() {
		return fmt.Errorf("%w: issue and due dates are required", ErrInvalidInvoiceInput)
	}
	if input.DueDate.Before(input.IssueDate) {
		return fmt.Errorf("%w: due date must not precede issue date", ErrInvalidInvoiceInput)
	}
	return nil
}

func (s *invoiceService) checkClient(clientID *uuid.UUID) error {
	if clientID == nil {
		return nil
	}
	if _, err := s.clientRepo.GetByID(*clientID); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return fmt.Errorf("%w: client does not exist", ErrInvalidInvoiceInput)
		}
		return fmt.Errorf("failed to check client: %w", err)
	}
	return nil
}

func (s *invoiceService) CreateInvoice(input InvoiceInput) (*models.Invoice, error) {
	if err := validateInvoiceInput(input); err != nil {
		return nil, err
	}
	if err := s.checkClient(input.ClientID); err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		Number:    input.Number,
		ClientID:  input.ClientID,
		Amount:    input.Amount.Round(2),
		TaxRate:   input.TaxRate,
		Status:    models.InvoiceStatusDraft,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
	}
	invoice.ComputeTotals()

	if err := s.invoiceRepo.Create(invoice); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNumberExists) {
			return nil, ErrInvoiceNumberTaken
		}
		slog.Error("failed to create invoice", "number", input.Number, "error", err)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	slog.Info("invoice created",
		"invoice_id", invoice.ID,
		"number", invoice.Number,
		"amount", invoice.Amount.String(),
		"total_amount", invoice.TotalAmount.String())
	return invoice, nil
}

func (s *invoiceService) GetInvoice(id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoices(offset, limit int) ([]models.Invoice, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	invoices, total, err := s.invoiceRepo.GetAll(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}

func (s *invoiceService) UpdateInvoice(id uuid.UUID, input InvoiceInput) (*models.Invoice, error) {
	if err := validateInvoiceInput(input); err != nil {
		return nil, err
	}
	if err := s.checkClient(input.ClientID); err != nil {
		return nil, err
	}

	invoice, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}

	invoice.Number = input.Number
	invoice.ClientID = input.ClientID
	invoice.Amount = input.Amount.Round(2)
	invoice.TaxRate = input.TaxRate
	invoice.IssueDate = input.IssueDate
	invoice.DueDate = input.DueDate
	invoice.ComputeTotals()

	if err := s.invoiceRepo.Update(invoice); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNumberExists) {
			return nil, ErrInvoiceNumberTaken
		}
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		slog.Error("failed to update invoice", "invoice_id", id, "error", err)
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return invoice, nil
}

func (s *invoiceService) UpdateInvoiceStatus(id uuid.UUID, status string, paidDate *time.Time) (*models.Invoice, error) {
	if !models.IsValidInvoiceStatus(status) {
		return nil, ErrUnknownStatus
	}

	invoice, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}

	if !invoice.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	if status == models.InvoiceStatusPaid && paidDate == nil {
		now := s.clock().UTC().Truncate(24 * time.Hour)
		paidDate = &now
	}
	if status != models.InvoiceStatusPaid {
		paidDate = nil
	}

	if err := s.invoiceRepo.UpdateStatus(id, status, paidDate); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, ErrInvoiceNotFound
		}
		slog.Error("failed to update invoice status", "invoice_id", id, "status", status, "error", err)
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	invoice.Status = status
	invoice.PaidDate = paidDate

	slog.Info("invoice status updated", "invoice_id", id, "status", status)
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(id uuid.UUID) error {
	if err := s.invoiceRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return ErrInvoiceNotFound
		}
		slog.Error("failed to delete invoice", "invoice_id", id, "error", err)
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	slog.Info("invoice deleted", "invoice_id", id)
	return nil
}
