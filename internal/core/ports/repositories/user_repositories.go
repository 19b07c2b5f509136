package repositories

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email is reported as
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. Owned accounts, travel state, wallets and
	// wallet transactions cascade at the schema level.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
