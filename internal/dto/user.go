package dto

import (
	"time"

	"github.com/voyaplan/travel_wallet_app/internal/core/domain"
)

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	HomeCurrency string    `json:"homeCurrency"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Email:        u.Email,
		HomeCurrency: u.HomeCurrency,
		CreatedAt:    u.CreatedAt,
	}
}
