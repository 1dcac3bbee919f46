package dto

// RegisterUserRequest creates a password-based account.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateUserRequest changes profile fields.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=100"`
}

// UserResponse mirrors a user profile. The user ID doubles as the tenant ID
// on every owned record.
type UserResponse struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AuthProvider string `json:"authProvider"`
}
