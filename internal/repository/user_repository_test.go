package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/errors"
	"storefront/internal/model"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	assert.NoError(t, repo.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"}))

	err := repo.Create(ctx, &model.User{Name: "Imposter", Email: "alice@example.com"})
	assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)

	// email comparison ignores case and surrounding whitespace
	err = repo.Create(ctx, &model.User{Name: "Imposter", Email: " ALICE@example.com"})
	assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateName(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	assert.NoError(t, repo.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"}))

	updated, err := repo.UpdateName(ctx, 1, "Alicia")
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	byID, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", byID.Name)

	_, err = repo.UpdateName(ctx, 99, "Nobody")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}
