package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameTaken  = errors.New("category name already in use")
	ErrCategoryReferenced = errors.New("category still referenced by expenses")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) CreateCategory(name, color string) (*models.Category, error) {
	if existing, err := s.categoryRepo.GetByName(name); err == nil && existing != nil {
		return nil, ErrCategoryNameTaken
	}

	category := &models.Category{
		Name:  name,
		Color: color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameExists) {
			return nil, ErrCategoryNameTaken
		}
		slog.Error("failed to create category", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *categoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(id uuid.UUID, name, color *string) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}
	if color != nil {
		category.Color = *color
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameExists) {
			return nil, ErrCategoryNameTaken
		}
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		slog.Error("failed to update category", "category_id", id, "error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		if errors.Is(err, repositories.ErrCategoryInUse) {
			return ErrCategoryReferenced
		}
		slog.Error("failed to delete category", "category_id", id, "error", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("category deleted", "category_id", id)
	return nil
}
