// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tube/internal/domain/entity"
	"tube/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by id, including the password hash and refresh token.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the user matching either value. Empty values are ignored.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user and fills in its id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the non-nil fields of update and returns the stored result.
	Update(ctx context.Context, id string, update *entity.UserUpdate) (*entity.User, error)

	// SetRefreshToken replaces the stored refresh token without touching any other field.
	SetRefreshToken(ctx context.Context, id, token string) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, id string) error
}
