package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/controllers"
	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/models"
)

// RegisterBusinessRoutes sets up the listing CRUD routes
func RegisterBusinessRoutes(e *echo.Echo, business *controllers.BusinessController) {
	businessGroup := e.Group("/api/businesses")

	// Public reads
	businessGroup.GET("", business.GetAllBusinesses)
	businessGroup.GET("/:id", business.GetBusiness)

	// Admin-only mutations
	protected := businessGroup.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.Use(middleware.RequireRole(models.RoleAdmin))
	protected.POST("", business.CreateBusiness)
	protected.PUT("/:id", business.UpdateBusiness)
	protected.DELETE("/:id", business.DeleteBusiness)
}
