package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// Delete removes a user row. Used as the compensating step when
	// role-profile creation fails after the user insert succeeded.
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByEmail matches case-insensitively and returns nil when no user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
