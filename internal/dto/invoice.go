package dto

import "fiscaldesk/internal/models"

// CreateInvoiceRequest represents the request payload for creating an invoice.
// Tax and total amounts are derived server-side and never accepted here.
type CreateInvoiceRequest struct {
	Number    string  `json:"number" validate:"required,min=1,max=50"`
	ClientID  *string `json:"client_id,omitempty" validate:"omitempty,uuid"`
	Amount    string  `json:"amount" validate:"required"`
	TaxRate   string  `json:"tax_rate" validate:"required"`
	IssueDate string  `json:"issue_date" validate:"required,iso_date"`
	DueDate   string  `json:"due_date" validate:"required,iso_date"`
}

// UpdateInvoiceRequest represents a full invoice rewrite with the same shape
// as creation
type UpdateInvoiceRequest = CreateInvoiceRequest

// UpdateInvoiceStatusRequest represents an invoice status transition.
// PaidDate applies only when transitioning to paid; it defaults to today.
type UpdateInvoiceStatusRequest struct {
	Status   string  `json:"status" validate:"required,invoice_status"`
	PaidDate *string `json:"paid_date,omitempty" validate:"omitempty,iso_date"`
}

// InvoiceListResponse represents a paginated list of invoices
type InvoiceListResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}
