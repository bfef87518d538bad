package handlers

import (
	"net/http"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles expense-category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a new expense category
// @Summary Create a category
// @Description Create a new expense category with a display color
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} models.Category "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Color)
	if err != nil {
		if err == services.ErrCategoryNameTaken {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// GetCategory retrieves a category by ID
// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} models.Category "Category details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid category ID format"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// GetCategories retrieves all categories ordered by name
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "List of categories"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// UpdateCategory applies a partial update to a category
// @Summary Update category
// @Description Update the name and/or color of a category; omitted fields are unchanged
// @Tags Categories
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.Category "Updated category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Color)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == services.ErrCategoryNameTaken {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category that has no expenses attached
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} SuccessResponse "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid category ID format"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_003 - Category still referenced by expenses"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == services.ErrCategoryReferenced {
			return SendError(c, errors.CategoryInUse)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted successfully"})
}
