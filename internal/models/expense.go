package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeExpenseAmount = errors.New("expense amount must be non-negative")
	ErrExpenseDateRequired   = errors.New("expense date is required")
)

// Expense represents a single business expense
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if e.Amount.IsNegative() {
		return ErrNegativeExpenseAmount
	}

	if e.ExpenseDate.IsZero() {
		return ErrExpenseDateRequired
	}

	return nil
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// ExpenseFilters defines optional filters for expense queries and summaries
type ExpenseFilters struct {
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
