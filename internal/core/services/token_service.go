package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

// refreshTokenBytes sizes the raw refresh token (hex doubles it).
const refreshTokenBytes = 32

// TokenConfig carries the signing parameters for token issuance.
type TokenConfig struct {
	JWTSecret     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

// tokenService issues and rotates JWT access/refresh token pairs. Refresh
// tokens are single use; presenting one invalidates it.
type tokenService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      TokenConfig
}

// NewTokenService creates a new TokenService.
func NewTokenService(userRepo portsrepo.UserRepositoryFacade, cfg TokenConfig) portssvc.TokenSvcFacade {
	return &tokenService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueTokenPair mints an access JWT and a fresh refresh token, persisting
// only the refresh token's hash.
func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.AccessExpiry, s.cfg.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	expiresAt := time.Now().UTC().Add(s.cfg.RefreshExpiry)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &tokenHash, &expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.AccessExpiry.Seconds()),
		User: dto.UserResponse{
			UserID:       user.UserID,
			Email:        user.Email,
			Name:         user.Name,
			AuthProvider: user.AuthProvider,
		},
	}, nil
}

// RefreshTokenPair rotates a valid refresh token into a new pair. Expired or
// unknown tokens surface as ErrUnauthorized.
func (s *tokenService) RefreshTokenPair(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if user.RefreshExpiresAt == nil || time.Now().UTC().After(*user.RefreshExpiresAt) {
		s.LogWarn(ctx, "Expired refresh token presented", slog.String("user_id", user.UserID))
		// Clear the stale token so it cannot be retried.
		if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, nil, nil); err != nil {
			s.LogError(ctx, err, "Failed to clear expired refresh token", slog.String("user_id", user.UserID))
		}
		return nil, apperrors.ErrUnauthorized
	}

	s.LogInfo(ctx, "Refresh token rotated", slog.String("user_id", user.UserID))
	return s.IssueTokenPair(ctx, user)
}

// RevokeRefreshToken clears the active refresh token (logout).
func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
