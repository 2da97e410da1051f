package service

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// UserService exposes profile operations.
type UserService interface {
	UpdateName(ctx context.Context, userID int64, name string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) UpdateName(ctx context.Context, userID int64, name string) (*model.User, error) {
	return s.users.UpdateName(ctx, userID, name)
}
