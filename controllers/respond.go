// controllers/respond.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/services"
)

// errorResponse maps a service error onto the HTTP response envelope
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = "Authentication required"
	case errors.Is(err, services.ErrPermissionDenied):
		status = http.StatusForbidden
		message = "Permission denied"
	case errors.Is(err, services.ErrInvalidArgument):
		status = http.StatusBadRequest
		message = "Invalid request"
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = "Not found"
	case errors.Is(err, services.ErrHasChildren):
		status = http.StatusConflict
		message = "Cannot delete category: it has subcategories"
	}

	return c.JSON(status, models.Response{
		Status:  status,
		Message: message,
	})
}
