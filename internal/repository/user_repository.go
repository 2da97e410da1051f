package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// UserRepository defines account store operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*model.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	nextID  int64
	users   []*model.User
	byEmail map[string]*model.User
}

// NewUserRepository builds an in-memory account store.
func NewUserRepository() UserRepository {
	return &userRepository{byEmail: make(map[string]*model.User)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a user, failing if the email is already taken.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return errors.ErrUserAlreadyExists
	}

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	stored := *user
	r.users = append(r.users, &stored)
	r.byEmail[key] = &stored
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byEmail[normalizeEmail(email)]; ok {
		found := *u
		return &found, nil
	}
	return nil, errors.ErrUserNotFound
}

func (r *userRepository) UpdateName(ctx context.Context, id int64, name string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.Name = name
			updated := *u
			return &updated, nil
		}
	}
	return nil, errors.ErrUserNotFound
}
