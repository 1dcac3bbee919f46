package dto

// AuthResponse carries a freshly issued token pair and the authenticated
// user's profile.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}
