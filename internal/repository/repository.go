package repository

import (
	"errors"
	"time"

	"github.com/m1zuki/todo-quota-api/internal/models"
)

var (
	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user repository: user not found")
	// ErrUsernameTaken is returned when an insert collides with an existing username.
	ErrUsernameTaken = errors.New("user repository: username already exists")
	// ErrTodoNotFound is returned when a todo id does not belong to the user.
	ErrTodoNotFound = errors.New("user repository: todo not found")
	// ErrQuotaExceeded is returned when a non-pro user is at the free todo quota.
	ErrQuotaExceeded = errors.New("user repository: free todo quota exceeded")
	// ErrProAlreadyActive is returned when upgrading a user that is already pro.
	ErrProAlreadyActive = errors.New("user repository: pro plan already active")
)

// UserRepository defines the interface for user directory access.
//
// Every method is a single atomic operation: check-then-insert and
// quota-then-append sequences are never observable half-done, so the
// uniqueness and quota rules are re-validated by the implementation even
// when callers have already checked them.
type UserRepository interface {
	// Insert adds a new user; fails with ErrUsernameTaken on collision.
	Insert(user models.User) error

	// FindByID finds a user by id.
	FindByID(id string) (models.User, error)

	// FindByUsername finds a user by username (case-sensitive exact match).
	FindByUsername(username string) (models.User, error)

	// SetPro flips the pro flag; fails with ErrProAlreadyActive if set.
	SetPro(id string) (models.User, error)

	// ListTodos returns the user's todos in insertion order.
	ListTodos(username string) ([]models.Todo, error)

	// AppendTodo appends a todo, enforcing the free quota for non-pro users.
	AppendTodo(username string, todo models.Todo) error

	// UpdateTodo replaces title and deadline on the matching todo.
	UpdateTodo(username, todoID, title string, deadline *time.Time) (models.Todo, error)

	// CompleteTodo marks the matching todo done (idempotent).
	CompleteTodo(username, todoID string) (models.Todo, error)

	// DeleteTodo removes the matching todo from the user's sequence.
	DeleteTodo(username, todoID string) error
}
