package handlers

import (
	"net/http"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/models"
	"fiscaldesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	summaryService services.ExpenseSummaryServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	summaryService services.ExpenseSummaryServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		summaryService: summaryService,
	}
}

// CreateExpense records a new expense
// @Summary Create an expense
// @Description Record an expense against a category; the amount is a decimal string
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} models.Expense "Expense created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return SendError(c, errors.ExpenseInvalidAmount, errors.WithDetails(err.Error()))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("Invalid category ID"))
	}

	expenseDate, err := parseDate(req.ExpenseDate, "expense_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.CreateExpense(amount, categoryID, expenseDate, req.Notes)
	if err != nil {
		if err == services.ErrExpenseCategoryMissing {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == services.ErrNegativeAmount {
			return SendError(c, errors.ExpenseInvalidAmount, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// GetExpense retrieves an expense by ID
// @Summary Get expense by ID
// @Tags Expenses
// @Produce json
// @Param expenseId path string true "Expense ID (UUID)"
// @Success 200 {object} models.Expense "Expense details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid expense ID format"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/{expenseId} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := parseUUIDParam(c, "expenseId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		if err == services.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// GetExpenses retrieves a paginated expense list, newest first
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ExpenseListResponse "Paginated expenses"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pagination parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	expenses, total, err := h.expenseService.GetExpenses(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// GetExpenseSummary aggregates expenses with optional filters
// @Summary Expense summary
// @Description Aggregate totals and per-category breakdown, optionally filtered by category and inclusive date range
// @Tags Expenses
// @Produce json
// @Param category_id query string false "Category ID (UUID)"
// @Param start_date query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} models.ExpenseSummary "Aggregated expenses"
// @Failure 400 {object} errors.ErrorResponse "EXPENSE_003 - End date precedes start date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/summary [get]
func (h *ExpenseHandler) GetExpenseSummary(c echo.Context) error {
	filters := models.ExpenseFilters{}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("Invalid category ID"))
		}
		filters.CategoryID = &categoryID
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	filters.StartDate = startDate

	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	filters.EndDate = endDate

	summary, err := h.summaryService.SummarizeExpenses(filters)
	if err != nil {
		if err == services.ErrInvalidDateRange {
			return SendError(c, errors.ExpenseInvalidRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateExpense applies a partial update to an expense
// @Summary Update expense
// @Description Update amount, category, date and/or notes; omitted fields are unchanged
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expenseId path string true "Expense ID (UUID)"
// @Param request body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} models.Expense "Updated expense"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/{expenseId} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := parseUUIDParam(c, "expenseId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var update services.ExpenseUpdate

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount, "amount")
		if err != nil {
			return SendError(c, errors.ExpenseInvalidAmount, errors.WithDetails(err.Error()))
		}
		update.Amount = &amount
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("Invalid category ID"))
		}
		update.CategoryID = &categoryID
	}

	if req.ExpenseDate != nil {
		expenseDate, err := parseDate(*req.ExpenseDate, "expense_date")
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		update.ExpenseDate = &expenseDate
	}

	update.Notes = req.Notes

	expense, err := h.expenseService.UpdateExpense(id, update)
	if err != nil {
		if err == services.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		if err == services.ErrExpenseCategoryMissing {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == services.ErrNegativeAmount {
			return SendError(c, errors.ExpenseInvalidAmount, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense
// @Summary Delete expense
// @Tags Expenses
// @Produce json
// @Param expenseId path string true "Expense ID (UUID)"
// @Success 200 {object} SuccessResponse "Expense deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid expense ID format"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/{expenseId} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := parseUUIDParam(c, "expenseId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if err == services.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Expense deleted successfully"})
}
