package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/controllers"
	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/models"
)

// RegisterCategoryRoutes sets up the category tree routes
func RegisterCategoryRoutes(e *echo.Echo, category *controllers.CategoryController) {
	categoryGroup := e.Group("/api/categories")

	// Public listing (consumed by the app's browse screen)
	categoryGroup.GET("", category.GetCategories)

	// Admin-only mutations
	protected := categoryGroup.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.Use(middleware.RequireRole(models.RoleAdmin))
	protected.POST("", category.CreateCategory)
	protected.DELETE("/:id", category.DeleteCategory)
}
