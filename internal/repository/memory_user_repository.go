package repository

import (
	"sync"
	"time"

	"github.com/m1zuki/todo-quota-api/internal/constants"
	"github.com/m1zuki/todo-quota-api/internal/models"
)

// MemoryUserRepository is an in-process implementation of UserRepository.
// Users live for the process lifetime; there is no persistence layer and no
// removal operation. Lookups are hash-indexed by both username and id, with
// both indexes maintained at insert time.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]*models.User
	byID       map[string]*models.User
}

// NewMemoryUserRepository creates an empty user directory.
func NewMemoryUserRepository() UserRepository {
	return &MemoryUserRepository{
		byUsername: make(map[string]*models.User),
		byID:       make(map[string]*models.User),
	}
}

// Insert adds a new user. The username collision check runs under the write
// lock so two concurrent creations cannot both pass it.
func (r *MemoryUserRepository) Insert(user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return ErrUsernameTaken
	}

	stored := user.Clone()
	if stored.Todos == nil {
		stored.Todos = []models.Todo{}
	}

	r.byUsername[stored.Username] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

// FindByID finds a user by id.
func (r *MemoryUserRepository) FindByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

// FindByUsername finds a user by username.
func (r *MemoryUserRepository) FindByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

// SetPro activates the pro plan for the user with the given id.
func (r *MemoryUserRepository) SetPro(id string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if user.Pro {
		return models.User{}, ErrProAlreadyActive
	}

	user.Pro = true
	return user.Clone(), nil
}

// ListTodos returns the user's todos in insertion order.
func (r *MemoryUserRepository) ListTodos(username string) ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	todos := make([]models.Todo, len(user.Todos))
	copy(todos, user.Todos)
	return todos, nil
}

// AppendTodo appends a todo to the user's sequence. The quota check and the
// append share one critical section so concurrent creations cannot push a
// non-pro user past the cap.
func (r *MemoryUserRepository) AppendTodo(username string, todo models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return ErrUserNotFound
	}
	if !user.Pro && len(user.Todos) >= constants.FreeTodoQuota {
		return ErrQuotaExceeded
	}

	user.Todos = append(user.Todos, todo)
	return nil
}

// UpdateTodo replaces title and deadline on the matching todo.
func (r *MemoryUserRepository) UpdateTodo(username, todoID, title string, deadline *time.Time) (models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return models.Todo{}, ErrUserNotFound
	}

	i := todoIndex(user.Todos, todoID)
	if i < 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	user.Todos[i].Title = title
	user.Todos[i].Deadline = deadline
	return user.Todos[i], nil
}

// CompleteTodo marks the matching todo done.
func (r *MemoryUserRepository) CompleteTodo(username, todoID string) (models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return models.Todo{}, ErrUserNotFound
	}

	i := todoIndex(user.Todos, todoID)
	if i < 0 {
		return models.Todo{}, ErrTodoNotFound
	}

	user.Todos[i].Done = true
	return user.Todos[i], nil
}

// DeleteTodo removes the matching todo from the user's sequence.
func (r *MemoryUserRepository) DeleteTodo(username, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return ErrUserNotFound
	}

	i := todoIndex(user.Todos, todoID)
	if i < 0 {
		return ErrTodoNotFound
	}

	user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
	return nil
}

func todoIndex(todos []models.Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}
