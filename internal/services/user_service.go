package services

import (
	"errors"
	"fmt"

	"github.com/m1zuki/todo-quota-api/internal/models"
	"github.com/m1zuki/todo-quota-api/internal/repository"
	"github.com/m1zuki/todo-quota-api/internal/utils"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyPro    = errors.New("pro plan is already activated")
)

// UserService handles account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Name     string
	Username string
}

// CreateUser registers a new account with a generated id, no pro plan and an
// empty todo list. Usernames are unique across the directory; the repository
// re-checks the collision atomically on insert.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := models.User{
		ID:       utils.NewID(),
		Name:     input.Name,
		Username: input.Username,
		Pro:      false,
		Todos:    []models.Todo{},
	}

	if err := s.userRepo.Insert(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// UpgradeToPro activates the pro plan for a user. The upgrade is one-way;
// there is no downgrade path.
func (s *UserService) UpgradeToPro(id string) (*models.User, error) {
	user, err := s.userRepo.SetPro(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrProAlreadyActive):
			return nil, ErrAlreadyPro
		default:
			return nil, fmt.Errorf("failed to upgrade user: %w", err)
		}
	}

	return &user, nil
}
