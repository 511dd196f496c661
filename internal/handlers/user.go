package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
	"github.com/m1zuki/todo-quota-api/internal/middleware"
	"github.com/m1zuki/todo-quota-api/internal/services"
)

// UserHandler coordinates account-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name     string `json:"name"`
		Username string `json:"username" binding:"required"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			apierrors.BadRequest(c, "Username already exists")
			return
		}
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser returns the user resolved by RequireUserByID.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.BadRequest(c, "user was not resolved for the request")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpgradeToPro activates the pro plan for the resolved user.
func (h *UserHandler) UpgradeToPro(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.BadRequest(c, "user was not resolved for the request")
		return
	}

	upgraded, err := h.userService.UpgradeToPro(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyPro):
			apierrors.BadRequest(c, "Pro plan is already activated.")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "user not found")
		default:
			apierrors.InternalError(c, "Failed to upgrade user")
		}
		return
	}

	c.JSON(http.StatusOK, upgraded)
}
