// controllers/approval_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/services"
)

// ApprovalController exposes the business moderation workflow
type ApprovalController struct {
	moderation *services.ModerationService
}

func NewApprovalController(moderation *services.ModerationService) *ApprovalController {
	return &ApprovalController{moderation: moderation}
}

// ApproveBusiness marks a business listing as publicly visible
func (ac *ApprovalController) ApproveBusiness(c echo.Context) error {
	actorID := middleware.GetUserIDFromToken(c)
	businessID := c.Param("id")

	business, err := ac.moderation.Approve(c.Request().Context(), actorID, businessID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business approved successfully",
		Data:    business,
	})
}
