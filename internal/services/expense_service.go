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
	ErrExpenseNotFound        = errors.New("expense not found")
	ErrExpenseCategoryMissing = errors.New("expense category does not exist")
	ErrNegativeAmount         = errors.New("amount must not be negative")
)

type expenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *expenseService) CreateExpense(amount decimal.Decimal, categoryID uuid.UUID, expenseDate time.Time, notes string) (*models.Expense, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrExpenseCategoryMissing
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	expense := &models.Expense{
		Amount:      amount.Round(2),
		CategoryID:  categoryID,
		ExpenseDate: expenseDate,
		Notes:       notes,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		slog.Error("failed to create expense", "error", err)
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("expense created",
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"category_id", expense.CategoryID)
	return expense, nil
}

func (s *expenseService) GetExpense(id uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenses(offset, limit int) ([]models.Expense, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	expenses, total, err := s.expenseRepo.GetAll(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}

func (s *expenseService) UpdateExpense(id uuid.UUID, update ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.GetExpense(id)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		if update.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		expense.Amount = update.Amount.Round(2)
	}
	if update.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*update.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, ErrExpenseCategoryMissing
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		expense.CategoryID = *update.CategoryID
	}
	if update.ExpenseDate != nil {
		expense.ExpenseDate = *update.ExpenseDate
	}
	if update.Notes != nil {
		expense.Notes = *update.Notes
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		slog.Error("failed to update expense", "expense_id", id, "error", err)
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		slog.Error("failed to delete expense", "expense_id", id, "error", err)
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	slog.Info("expense deleted", "expense_id", id)
	return nil
}
