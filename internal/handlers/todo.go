package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
	"github.com/m1zuki/todo-quota-api/internal/middleware"
	"github.com/m1zuki/todo-quota-api/internal/services"
)

// TodoHandler coordinates todo-related HTTP handlers.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos returns the requesting user's todos in insertion order.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.BadRequest(c, "user was not resolved for the request")
		return
	}

	todos, err := h.todoService.ListTodos(user.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "user not found")
			return
		}
		apierrors.InternalError(c, "Failed to list todos")
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo appends a new todo for the requesting user.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.BadRequest(c, "user was not resolved for the request")
		return
	}

	type CreateTodoRequest struct {
		Title    string `json:"title" binding:"required"`
		Deadline string `json:"deadline"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(user.Username, services.TodoInput{
		Title:    req.Title,
		Deadline: req.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuotaExceeded):
			apierrors.Forbidden(c, "cannot create any todo, limit exceeded")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "user not found")
		default:
			apierrors.InternalError(c, "Failed to create todo")
		}
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo replaces title and deadline on the resolved todo. PUT semantics:
// fields omitted from the body are overwritten, not merged.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	user, userOK := middleware.GetUser(c)
	todo, todoOK := middleware.GetTodo(c)
	if !userOK || !todoOK {
		apierrors.BadRequest(c, "todo was not resolved for the request")
		return
	}

	type ReplaceTodoRequest struct {
		Title    string `json:"title"`
		Deadline string `json:"deadline"`
	}

	var req ReplaceTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.todoService.UpdateTodo(user.Username, todo.ID, services.TodoInput{
		Title:    req.Title,
		Deadline: req.Deadline,
	})
	if err != nil {
		respondTodoError(c, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CompleteTodo marks the resolved todo done. Idempotent.
func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	user, userOK := middleware.GetUser(c)
	todo, todoOK := middleware.GetTodo(c)
	if !userOK || !todoOK {
		apierrors.BadRequest(c, "todo was not resolved for the request")
		return
	}

	completed, err := h.todoService.CompleteTodo(user.Username, todo.ID)
	if err != nil {
		respondTodoError(c, err, "Failed to complete todo")
		return
	}

	c.JSON(http.StatusOK, completed)
}

// DeleteTodo removes the resolved todo from the user's sequence.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	user, userOK := middleware.GetUser(c)
	todo, todoOK := middleware.GetTodo(c)
	if !userOK || !todoOK {
		apierrors.BadRequest(c, "todo was not resolved for the request")
		return
	}

	// The locator already confirmed the todo, but the store re-checks at
	// removal time; another request may have deleted it in between.
	if err := h.todoService.DeleteTodo(user.Username, todo.ID); err != nil {
		respondTodoError(c, err, "Failed to delete todo")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTodoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "user not found")
	case errors.Is(err, services.ErrTodoNotFound):
		apierrors.NotFound(c, "Todo not found")
	default:
		apierrors.InternalError(c, fallback)
	}
}
