package repositories

import (
	"errors"
	"fmt"
	"time"

	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID with its category preloaded
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Preload("Category").First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetAll retrieves all expenses with pagination, most recent first
func (r *expenseRepository) GetAll(offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Preload("Category").Offset(offset).Limit(limit).
		Order("expense_date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByDateRange retrieves expenses whose expense date falls within the
// inclusive range
func (r *expenseRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Preload("Category").
		Where("expense_date >= ? AND expense_date <= ?", startDate, endDate).
		Order("expense_date ASC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetWithFilters retrieves expenses matching the optional filters
func (r *expenseRepository) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, error) {
	query := r.db.Preload("Category").Model(&models.Expense{})

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.StartDate != nil {
		query = query.Where("expense_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("expense_date <= ?", *filters.EndDate)
	}

	var expenses []models.Expense
	if err := query.Order("expense_date ASC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses with filters: %w", err)
	}
	return expenses, nil
}

// Update updates an existing expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(expense).Updates(map[string]interface{}{
		"amount":       expense.Amount,
		"category_id":  expense.CategoryID,
		"expense_date": expense.ExpenseDate,
		"notes":        expense.Notes,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense
func (r *expenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
