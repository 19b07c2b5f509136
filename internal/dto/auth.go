package dto

// RegisterRequest defines the data needed to register a new user.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	HomeCurrency string `json:"homeCurrency" binding:"omitempty,currencycode"` // Defaults to EUR
}

// LoginRequest defines the data needed to authenticate.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
