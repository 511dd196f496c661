package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/m1zuki/todo-quota-api/internal/models"
	"github.com/m1zuki/todo-quota-api/internal/repository"
	"github.com/m1zuki/todo-quota-api/internal/utils"
)

var (
	ErrQuotaExceeded = errors.New("todo limit exceeded")
	ErrTodoNotFound  = errors.New("todo not found")
)

// deadlineFormats are tried in order when parsing caller-supplied deadlines.
var deadlineFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TodoService handles todo business logic.
type TodoService struct {
	userRepo repository.UserRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(userRepo repository.UserRepository) *TodoService {
	return &TodoService{
		userRepo: userRepo,
	}
}

// TodoInput carries the caller-editable todo fields. Create and replace share
// the shape: an omitted or unparseable deadline becomes null.
type TodoInput struct {
	Title    string
	Deadline string
}

// ListTodos returns the user's todos in insertion order.
func (s *TodoService) ListTodos(username string) ([]models.Todo, error) {
	todos, err := s.userRepo.ListTodos(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// CreateTodo appends a new todo to the user's sequence. Non-pro users are
// capped by the free quota; the repository enforces the cap atomically with
// the append.
func (s *TodoService) CreateTodo(username string, input TodoInput) (*models.Todo, error) {
	todo := models.Todo{
		ID:        utils.NewID(),
		Title:     input.Title,
		Deadline:  parseDeadline(input.Deadline),
		Done:      false,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.AppendTodo(username, todo); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrQuotaExceeded):
			return nil, ErrQuotaExceeded
		default:
			return nil, fmt.Errorf("failed to create todo: %w", err)
		}
	}

	return &todo, nil
}

// UpdateTodo replaces title and deadline on the todo. This is a full replace,
// not a merge: fields missing from the input are overwritten all the same.
func (s *TodoService) UpdateTodo(username, todoID string, input TodoInput) (*models.Todo, error) {
	todo, err := s.userRepo.UpdateTodo(username, todoID, input.Title, parseDeadline(input.Deadline))
	if err != nil {
		return nil, translateTodoError(err, "update")
	}

	return &todo, nil
}

// CompleteTodo marks the todo done. Completing an already-done todo is a no-op.
func (s *TodoService) CompleteTodo(username, todoID string) (*models.Todo, error) {
	todo, err := s.userRepo.CompleteTodo(username, todoID)
	if err != nil {
		return nil, translateTodoError(err, "complete")
	}

	return &todo, nil
}

// DeleteTodo removes the todo from the user's sequence.
func (s *TodoService) DeleteTodo(username, todoID string) error {
	if err := s.userRepo.DeleteTodo(username, todoID); err != nil {
		return translateTodoError(err, "delete")
	}

	return nil
}

func translateTodoError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrTodoNotFound):
		return ErrTodoNotFound
	default:
		return fmt.Errorf("failed to %s todo: %w", op, err)
	}
}

func parseDeadline(value string) *time.Time {
	for _, layout := range deadlineFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
