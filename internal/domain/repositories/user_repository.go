package repositories

import (
	"context"

	"github.com/google/uuid"
	"quickhire/internal/domain/entities"
)

type UserRepository interface {
	// Create inserts the user and relies on the unique email constraint as the
	// single source of truth for duplicates, surfaced as common.ErrDuplicateUser.
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// FindByEmail is an exact, case-sensitive match. Returns (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
