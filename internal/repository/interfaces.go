package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/karankatare99/uber/internal/domain"
)

// UserRepository is the credential store adapter. Implementations return
// domain.ErrUserNotFound when a lookup misses.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error
	ClearSessionToken(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User UserRepository
}
