package domain

import "time"

// User is both the authenticated principal and the tenant: every voucher,
// account and cost centre row carries the owning user's ID and all queries
// filter by it.
type User struct {
	UserID           string     `json:"userID"` // Primary Key (UUID)
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PasswordHash     string     `json:"-"` // bcrypt; empty for OAuth-only users
	AuthProvider     string     `json:"authProvider"`     // "local" or "google"
	ProviderUserID   *string    `json:"providerUserID"`   // Subject from the OAuth provider
	RefreshTokenHash *string    `json:"-"`                // SHA-256 of the active refresh token
	RefreshExpiresAt *time.Time `json:"refreshExpiresAt"` // Expiry of the active refresh token
	AuditFields
}
