package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// UserService handles user listing and upserts
type UserService struct {
	store repository.Store
	clock Clock
}

// NewUserService creates a new UserService
func NewUserService(store repository.Store, clock Clock) *UserService {
	return &UserService{
		store: store,
		clock: clock,
	}
}

// CreateUserInput represents the fields of a user upsert
type CreateUserInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,max=255"`
}

// ListUsers returns every user ordered by name
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// GetUser returns a user by id
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	if err := requirePositiveID("id", id); err != nil {
		return nil, err
	}
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("find user", err)
	}
	return user, nil
}

// CreateOrUpdateUserByEmail creates a user, or renames the existing user
// holding the same email. Emails are compared case-insensitively.
func (s *UserService) CreateOrUpdateUserByEmail(ctx context.Context, input CreateUserInput) (*models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: s.clock.now(),
	}
	if err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Users().UpsertByEmail(ctx, user)
	}); err != nil {
		return nil, storeError("upsert user", err)
	}
	return user, nil
}
