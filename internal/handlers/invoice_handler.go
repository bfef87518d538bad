package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/models"
	"fiscaldesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService services.InvoiceServiceInterface
	summaryService services.InvoiceSummaryServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService services.InvoiceServiceInterface,
	summaryService services.InvoiceSummaryServiceInterface,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		summaryService: summaryService,
	}
}

// invoiceInputFromRequest parses the string-typed request fields into the
// service input. Tax and total amounts are always derived server-side.
func invoiceInputFromRequest(req dto.CreateInvoiceRequest) (services.InvoiceInput, error) {
	input := services.InvoiceInput{Number: req.Number}

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return services.InvoiceInput{}, stderrors.New("invalid client ID")
		}
		input.ClientID = &clientID
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return services.InvoiceInput{}, err
	}
	input.Amount = amount

	taxRate, err := parseAmount(req.TaxRate, "tax_rate")
	if err != nil {
		return services.InvoiceInput{}, err
	}
	input.TaxRate = taxRate

	issueDate, err := parseDate(req.IssueDate, "issue_date")
	if err != nil {
		return services.InvoiceInput{}, err
	}
	input.IssueDate = issueDate

	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		return services.InvoiceInput{}, err
	}
	input.DueDate = dueDate

	return input, nil
}

// CreateInvoice creates a new draft invoice
// @Summary Create an invoice
// @Description Create a draft invoice; tax amount and total are computed from amount and tax rate
// @Tags Invoices
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} models.Invoice "Invoice created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 409 {object} errors.ErrorResponse "INVOICE_002 - Invoice number already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req dto.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	input, err := invoiceInputFromRequest(req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	invoice, err := h.invoiceService.CreateInvoice(input)
	if err != nil {
		if err == services.ErrInvoiceNumberTaken {
			return SendError(c, errors.InvoiceNumberExists)
		}
		if stderrors.Is(err, services.ErrInvalidInvoiceInput) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, invoice)
}

// GetInvoice retrieves an invoice by ID
// @Summary Get invoice by ID
// @Tags Invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID (UUID)"
// @Success 200 {object} models.Invoice "Invoice details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid invoice ID format"
// @Failure 404 {object} errors.ErrorResponse "INVOICE_001 - Invoice not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices/{invoiceId} [get]
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	id, err := parseUUIDParam(c, "invoiceId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	invoice, err := h.invoiceService.GetInvoice(id)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, invoice)
}

// GetInvoices retrieves a paginated invoice list, newest first
// @Summary List invoices
// @Tags Invoices
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.InvoiceListResponse "Paginated invoices"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pagination parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices [get]
func (h *InvoiceHandler) GetInvoices(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	invoices, total, err := h.invoiceService.GetInvoices(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.InvoiceListResponse{
		Invoices: invoices,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// GetInvoiceSummary aggregates invoices with optional status/year filters
// @Summary Invoice summary
// @Description Aggregate pre-tax invoice totals split by payment status
// @Tags Invoices
// @Produce json
// @Param status query string false "Invoice status filter" Enums(draft, sent, paid, overdue)
// @Param year query int false "Calendar year filter"
// @Success 200 {object} models.InvoiceSummary "Aggregated invoices"
// @Failure 400 {object} errors.ErrorResponse "INVOICE_003 - Invalid status filter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices/summary [get]
func (h *InvoiceHandler) GetInvoiceSummary(c echo.Context) error {
	filters := models.InvoiceFilters{}

	if raw := c.QueryParam("status"); raw != "" {
		if !models.IsValidInvoiceStatus(raw) {
			return SendError(c, errors.InvoiceInvalidStatus, errors.WithDetails("Unknown invoice status"))
		}
		filters.Status = &raw
	}

	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	filters.Year = year

	summary, err := h.summaryService.SummarizeInvoices(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateInvoice rewrites the caller-settable fields of an invoice
// @Summary Update invoice
// @Description Rewrite number, client, amount, tax rate and dates; derived amounts are recomputed
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID (UUID)"
// @Param request body dto.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} models.Invoice "Updated invoice"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "INVOICE_001 - Invoice not found"
// @Failure 409 {object} errors.ErrorResponse "INVOICE_002 - Invoice number already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices/{invoiceId} [put]
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	id, err := parseUUIDParam(c, "invoiceId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	input, err := invoiceInputFromRequest(req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	invoice, err := h.invoiceService.UpdateInvoice(id, input)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		if err == services.ErrInvoiceNumberTaken {
			return SendError(c, errors.InvoiceNumberExists)
		}
		if stderrors.Is(err, services.ErrInvalidInvoiceInput) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatus moves an invoice along its status lifecycle
// @Summary Update invoice status
// @Description Transition an invoice between draft, sent, paid and overdue; paid date defaults to today
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID (UUID)"
// @Param request body dto.UpdateInvoiceStatusRequest true "Target status"
// @Success 200 {object} models.Invoice "Updated invoice"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "INVOICE_001 - Invoice not found"
// @Failure 422 {object} errors.ErrorResponse "INVOICE_004 - Status transition not allowed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices/{invoiceId}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "invoiceId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var paidDate *time.Time
	if req.PaidDate != nil {
		parsed, err := parseDate(*req.PaidDate, "paid_date")
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		paidDate = &parsed
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(id, req.Status, paidDate)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		if err == services.ErrUnknownStatus {
			return SendError(c, errors.InvoiceInvalidStatus)
		}
		if err == services.ErrInvalidStatusTransition {
			return SendError(c, errors.InvoiceInvalidTransition)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice
// @Summary Delete invoice
// @Tags Invoices
// @Produce json
// @Param invoiceId path string true "Invoice ID (UUID)"
// @Success 200 {object} SuccessResponse "Invoice deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid invoice ID format"
// @Failure 404 {object} errors.ErrorResponse "INVOICE_001 - Invoice not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /invoices/{invoiceId} [delete]
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	id, err := parseUUIDParam(c, "invoiceId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	if err := h.invoiceService.DeleteInvoice(id); err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Invoice deleted successfully"})
}
