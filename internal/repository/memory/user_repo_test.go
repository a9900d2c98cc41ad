package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{
		ID:       uuid.New(),
		Email:    "mem@example.com",
		UserType: domain.UserTypeDriver,
	}
	require.NoError(t, repo.Create(ctx, user))

	// Duplicate email rejected like the unique index would
	assert.Error(t, repo.Create(ctx, &domain.User{ID: uuid.New(), Email: "mem@example.com"}))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "mem@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "copy@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	got.FirstName = "mutated"

	again, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, again.FirstName, "mutating a result must not touch the store")
}

func TestUserRepository_SessionToken(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "tok@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdateSessionToken(ctx, user.ID, "issued"))
	got, _ := repo.GetByID(ctx, user.ID)
	assert.Equal(t, "issued", got.SessionToken)

	require.NoError(t, repo.ClearSessionToken(ctx, user.ID))
	got, _ = repo.GetByID(ctx, user.ID)
	assert.Empty(t, got.SessionToken)

	assert.ErrorIs(t, repo.UpdateSessionToken(ctx, uuid.New(), "x"), domain.ErrUserNotFound)
}
