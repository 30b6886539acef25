package repository

import (
	"context"
	"errors"

	"accountd/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateUsername is returned by Create when the username is already
	// taken, regardless of which backend detected the collision.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrUserNotFound is returned by GetByID when no user has the given id.
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	// Create inserts the user and fills in timestamps. Returns
	// ErrDuplicateUsername on a username collision.
	Create(ctx context.Context, user *domain.User) error
	// GetByID returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByUsername returns (nil, nil) when no row matches; absence is not an
	// error for this lookup.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Repositories struct {
	User UserRepository
}
