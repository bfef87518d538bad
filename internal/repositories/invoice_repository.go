package repositories

import (
	"errors"
	"fmt"
	"time"

	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
)

// invoiceRepository implements InvoiceRepositoryInterface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	if err := r.db.Create(invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrInvoiceNumberExists
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by ID with its client preloaded
func (r *invoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.Preload("Client").First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

// GetAll retrieves all invoices with pagination, most recent first
func (r *invoiceRepository) GetAll(offset, limit int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	if err := r.db.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	if err := r.db.Preload("Client").Offset(offset).Limit(limit).
		Order("issue_date DESC, created_at DESC").Find(&invoices).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get invoices: %w", err)
	}

	return invoices, total, nil
}

// GetByIssueDateRange retrieves invoices issued within the inclusive range
func (r *invoiceRepository) GetByIssueDateRange(startDate, endDate time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Where("issue_date >= ? AND issue_date <= ?", startDate, endDate).
		Order("issue_date ASC, created_at ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices by issue date range: %w", err)
	}
	return invoices, nil
}

// GetWithFilters retrieves invoices matching the optional filters
func (r *invoiceRepository) GetWithFilters(filters models.InvoiceFilters) ([]models.Invoice, error) {
	query := r.db.Model(&models.Invoice{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Year != nil {
		start := time.Date(*filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(*filters.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		query = query.Where("issue_date >= ? AND issue_date <= ?", start, end)
	}

	var invoices []models.Invoice
	if err := query.Order("issue_date ASC, created_at ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices with filters: %w", err)
	}
	return invoices, nil
}

// Update updates an existing invoice
func (r *invoiceRepository) Update(invoice *models.Invoice) error {
	result := r.db.Model(invoice).Updates(map[string]interface{}{
		"number":       invoice.Number,
		"client_id":    invoice.ClientID,
		"amount":       invoice.Amount,
		"tax_rate":     invoice.TaxRate,
		"tax_amount":   invoice.TaxAmount,
		"total_amount": invoice.TotalAmount,
		"status":       invoice.Status,
		"issue_date":   invoice.IssueDate,
		"due_date":     invoice.DueDate,
		"paid_date":    invoice.PaidDate,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrInvoiceNumberExists
		}
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// UpdateStatus updates the status and paid date of an invoice
func (r *invoiceRepository) UpdateStatus(id uuid.UUID, status string, paidDate *time.Time) error {
	result := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":    status,
		"paid_date": paidDate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update invoice status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// Delete removes an invoice
func (r *invoiceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
