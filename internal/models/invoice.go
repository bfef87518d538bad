package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

var (
	ErrInvalidInvoiceStatus   = errors.New("invalid invoice status")
	ErrInvalidInvoiceAmount   = errors.New("invoice amount must be non-negative")
	ErrInvalidTaxRate         = errors.New("invoice tax rate must be between 0 and 100")
	ErrInvoiceTotalMismatch   = errors.New("invoice total does not equal amount plus tax")
	ErrPaidDateWithoutPaid    = errors.New("paid date is only valid on paid invoices")
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")
)

// Invoice represents an issued invoice. Amount is the pre-tax revenue;
// TaxAmount and TotalAmount are derived from Amount and TaxRate and stored
// already rounded to the cent.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number      string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"number"`
	ClientID    *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"tax_amount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	IssueDate   time.Time       `gorm:"type:date;not null;index" json:"issue_date"`
	DueDate     time.Time       `gorm:"type:date;not null" json:"due_date"`
	PaidDate    *time.Time      `gorm:"type:date" json:"paid_date,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate hook for Invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}

	if i.TaxAmount.IsZero() && i.TotalAmount.IsZero() {
		i.ComputeTotals()
	}

	return i.Validate()
}

// BeforeUpdate hook for Invoice
func (i *Invoice) BeforeUpdate(tx *gorm.DB) error {
	return i.Validate()
}

// ComputeTotals derives TaxAmount and TotalAmount from Amount and TaxRate.
// TaxAmount is rounded to the cent, half away from zero.
func (i *Invoice) ComputeTotals() {
	i.TaxAmount = i.Amount.Mul(i.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	i.TotalAmount = i.Amount.Add(i.TaxAmount)
}

// Validate validates the invoice fields and invariants
func (i *Invoice) Validate() error {
	if i.Number == "" {
		return errors.New("invoice number is required")
	}

	if !IsValidInvoiceStatus(i.Status) {
		return ErrInvalidInvoiceStatus
	}

	if i.Amount.IsNegative() {
		return ErrInvalidInvoiceAmount
	}

	if i.TaxRate.IsNegative() || i.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidTaxRate
	}

	if !i.Amount.Add(i.TaxAmount).Equal(i.TotalAmount) {
		return ErrInvoiceTotalMismatch
	}

	if i.PaidDate != nil && i.Status != InvoiceStatusPaid {
		return ErrPaidDateWithoutPaid
	}

	if i.IssueDate.IsZero() {
		return errors.New("issue date is required")
	}

	return nil
}

// IsPaid returns true if the invoice has been paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// MarkPaid marks the invoice as paid on the given date
func (i *Invoice) MarkPaid(paidDate time.Time) error {
	if !i.CanTransitionTo(InvoiceStatusPaid) {
		return ErrInvalidStatusTransition
	}
	i.Status = InvoiceStatusPaid
	i.PaidDate = &paidDate
	return nil
}

// CanTransitionTo checks if an invoice can transition to a new status
func (i *Invoice) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		InvoiceStatusDraft:   {InvoiceStatusSent},
		InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue},
		InvoiceStatusOverdue: {InvoiceStatusPaid},
		InvoiceStatusPaid:    {}, // Terminal state
	}

	allowedStatuses, exists := validTransitions[i.Status]
	if !exists {
		return false
	}

	for _, status := range allowedStatuses {
		if status == newStatus {
			return true
		}
	}
	return false
}

// TableName returns the table name for Invoice
func (i *Invoice) TableName() string {
	return "invoices"
}

// IsValidInvoiceStatus checks if the invoice status is valid
func IsValidInvoiceStatus(status string) bool {
	switch status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

// InvoiceFilters defines optional filters for invoice queries and summaries
type InvoiceFilters struct {
	Status *string
	Year   *int
}
