package dto

import "fiscaldesk/internal/models"

// CreateExpenseRequest represents the request payload for creating an expense.
// Amount is a decimal string; ExpenseDate is a YYYY-MM-DD date.
type CreateExpenseRequest struct {
	Amount      string `json:"amount" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	ExpenseDate string `json:"expense_date" validate:"required,iso_date"`
	Notes       string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateExpenseRequest represents a partial expense update; nil fields are
// left unchanged
type UpdateExpenseRequest struct {
	Amount      *string `json:"amount,omitempty"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	ExpenseDate *string `json:"expense_date,omitempty" validate:"omitempty,iso_date"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ExpenseListResponse represents a paginated list of expenses
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}
