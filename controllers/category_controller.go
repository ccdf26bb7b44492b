// controllers/category_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/services"
)

// CategoryController manages the two-level category tree
type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// CreateCategory creates a top-level category, or a subcategory when
// parentId is present in the request
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category data: " + err.Error(),
		})
	}

	var (
		category *models.Category
		err      error
	)
	if req.ParentID != "" {
		category, err = cc.categories.CreateSub(c.Request().Context(), req.Name, req.ParentID)
	} else {
		category, err = cc.categories.CreateTop(c.Request().Context(), req.Name)
	}
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Category created successfully",
		Data:    category,
	})
}

// GetCategories lists all categories sorted by name
func (cc *CategoryController) GetCategories(c echo.Context) error {
	categories, err := cc.categories.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// DeleteCategory removes a category that has no subcategories
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	if err := cc.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category deleted successfully",
	})
}
