// controllers/business_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/services"
)

// BusinessController manages directory listings
type BusinessController struct {
	businesses *services.BusinessService
}

func NewBusinessController(businesses *services.BusinessService) *BusinessController {
	return &BusinessController{businesses: businesses}
}

// CreateBusiness inserts a new listing (starts unapproved)
func (bc *BusinessController) CreateBusiness(c echo.Context) error {
	var req models.BusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business data: " + err.Error(),
		})
	}

	business, err := bc.businesses.Create(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Business created successfully",
		Data:    business,
	})
}

// GetBusiness returns one listing by id
func (bc *BusinessController) GetBusiness(c echo.Context) error {
	business, err := bc.businesses.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business retrieved successfully",
		Data:    business,
	})
}

// GetAllBusinesses lists every listing, newest first
func (bc *BusinessController) GetAllBusinesses(c echo.Context) error {
	businesses, err := bc.businesses.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Businesses retrieved successfully",
		Data:    businesses,
	})
}

// UpdateBusiness rewrites a listing and recomputes its derived fields
func (bc *BusinessController) UpdateBusiness(c echo.Context) error {
	var req models.BusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business data: " + err.Error(),
		})
	}

	business, err := bc.businesses.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business updated successfully",
		Data:    business,
	})
}

// DeleteBusiness removes a listing
func (bc *BusinessController) DeleteBusiness(c echo.Context) error {
	if err := bc.businesses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business deleted successfully",
	})
}
