package models

import "time"

// User is a persisted user row. The user ID is the tenant ID on owned data.
type User struct {
	UserID           string     `json:"userID"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PasswordHash     string     `json:"-"`
	AuthProvider     string     `json:"authProvider"` // "local" or "google"
	ProviderUserID   *string    `json:"-"`
	RefreshTokenHash *string    `json:"-"`
	RefreshExpiresAt *time.Time `json:"-"`
	AuditFields
}
