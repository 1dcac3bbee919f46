package mapping

import (
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	"github.com/gstbooks/gstbooks_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		Name:             d.Name,
		PasswordHash:     d.PasswordHash,
		AuthProvider:     d.AuthProvider,
		ProviderUserID:   d.ProviderUserID,
		RefreshTokenHash: d.RefreshTokenHash,
		RefreshExpiresAt: d.RefreshExpiresAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Email:            m.Email,
		Name:             m.Name,
		PasswordHash:     m.PasswordHash,
		AuthProvider:     m.AuthProvider,
		ProviderUserID:   m.ProviderUserID,
		RefreshTokenHash: m.RefreshTokenHash,
		RefreshExpiresAt: m.RefreshExpiresAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
