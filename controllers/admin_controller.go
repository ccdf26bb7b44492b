// controllers/admin_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/wen-dev/wen_backend/middleware"
	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/repositories"
	"github.com/wen-dev/wen_backend/services"
)

// AdminController handles user management for the admin console
type AdminController struct {
	users     repositories.UserRepository
	lifecycle *services.UserLifecycleService
}

func NewAdminController(users repositories.UserRepository, lifecycle *services.UserLifecycleService) *AdminController {
	return &AdminController{users: users, lifecycle: lifecycle}
}

// CreateUser creates a directory user with the given role and plan
func (ac *AdminController) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user data: " + err.Error(),
		})
	}

	existing, err := ac.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing users",
		})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "User with this email already exists",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	plan := req.Plan
	if plan == "" {
		plan = models.PlanFree
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      req.Role,
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ac.users.Insert(c.Request().Context(), &user); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Data:    user,
	})
}

// GetAllUsers retrieves all directory users
func (ac *AdminController) GetAllUsers(c echo.Context) error {
	users, err := ac.users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve users",
		})
	}

	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// UpdateUserRole writes a new role onto a user document
func (ac *AdminController) UpdateUserRole(c echo.Context) error {
	id := c.Param("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var req models.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid role",
		})
	}

	matched, err := ac.users.UpdateRole(c.Request().Context(), oid, req.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update role",
		})
	}
	if !matched {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Role updated successfully",
	})
}

// DeleteUser runs the user-deletion cascade for the target user
func (ac *AdminController) DeleteUser(c echo.Context) error {
	actorID := middleware.GetUserIDFromToken(c)
	targetID := c.Param("id")

	if err := ac.lifecycle.DeleteUser(c.Request().Context(), actorID, targetID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User deleted successfully",
	})
}
