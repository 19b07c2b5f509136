package services

import (
	"time"

	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/utils"
)

type tokenService struct {
	secret         string
	expiryDuration time.Duration
	issuer         string
}

// NewTokenService creates a new token service.
func NewTokenService(secret string, expiryDuration time.Duration, issuer string) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:         secret,
		expiryDuration: expiryDuration,
		issuer:         issuer,
	}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateToken issues a signed JWT for the user.
func (s *tokenService) GenerateToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, s.secret, s.expiryDuration, s.issuer)
}
