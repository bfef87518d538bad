package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

type expenseSummaryService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewExpenseSummaryService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) ExpenseSummaryServiceInterface {
	return &expenseSummaryService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *expenseSummaryService) SummarizeExpenses(filters models.ExpenseFilters) (*models.ExpenseSummary, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, ErrInvalidDateRange
	}

	expenses, err := s.expenseRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("failed to fetch expenses for summary", "error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		slog.Error("failed to fetch categories for summary", "error", err)
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	summary := buildExpenseSummary(expenses, categories)

	slog.Info("expense summary generated",
		"expense_count", summary.TotalCount,
		"category_count", len(summary.ByCategory),
		"total_amount", summary.TotalAmount.String())

	return summary, nil
}

// buildExpenseSummary folds raw expense rows into a total and per-category
// breakdown. Stored amounts are already rounded, so sums stay exact; only
// percentages are derived here.
func buildExpenseSummary(expenses []models.Expense, categories []models.Category) *models.ExpenseSummary {
	type bucket struct {
		total decimal.Decimal
		count int
	}

	grandTotal := decimal.Zero
	buckets := make(map[uuid.UUID]*bucket)

	for i := range expenses {
		exp := &expenses[i]
		grandTotal = grandTotal.Add(exp.Amount)

		b, ok := buckets[exp.CategoryID]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[exp.CategoryID] = b
		}
		b.total = b.total.Add(exp.Amount)
		b.count++
	}

	// Categories with no matching expenses are omitted from the breakdown
	byCategory := make([]models.CategoryBreakdown, 0, len(buckets))
	for i := range categories {
		cat := &categories[i]
		b, ok := buckets[cat.ID]
		if !ok {
			continue
		}

		byCategory = append(byCategory, models.CategoryBreakdown{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Color:        cat.Color,
			TotalAmount:  b.total,
			ExpenseCount: b.count,
			Percentage:   PercentageOf(b.total, grandTotal),
		})
	}

	sort.Slice(byCategory, func(i, j int) bool {
		if !byCategory[i].TotalAmount.Equal(byCategory[j].TotalAmount) {
			return byCategory[i].TotalAmount.GreaterThan(byCategory[j].TotalAmount)
		}
		return byCategory[i].CategoryName < byCategory[j].CategoryName
	})

	return &models.ExpenseSummary{
		TotalCount:  len(expenses),
		TotalAmount: grandTotal,
		ByCategory:  byCategory,
	}
}
