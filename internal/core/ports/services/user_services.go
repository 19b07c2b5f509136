package services

import (
	"context"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
	"github.com/voyaplan/travel_wallet_app/internal/dto"
)

// UserSvcFacade defines user lifecycle and authentication operations.
type UserSvcFacade interface {
	// CreateUser registers a new user. HomeCurrency defaults to EUR.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address (case-insensitive).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// AuthenticateUser verifies email/password and returns the user, or
	// apperrors.ErrUnauthorized on mismatch.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// DeleteUser removes a user and everything the user owns: accounts,
	// travel state, wallets and their transactions.
	DeleteUser(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates bearer tokens.
type TokenSvcFacade interface {
	// GenerateToken issues a signed JWT for the user.
	GenerateToken(userID string) (string, error)
}
