package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

// GoogleOAuthConfig carries the Google client credentials.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// googleOAuthService drives the Google sign-in code exchange and resolves
// Google identities to local users.
type googleOAuthService struct {
	BaseService
	oauth2Config *oauth2.Config
	clientID     string
	userSvc      portssvc.UserSvcFacade
	tokenSvc     portssvc.TokenSvcFacade
}

// NewGoogleOAuthService creates a new GoogleOAuthService.
func NewGoogleOAuthService(cfg GoogleOAuthConfig, userSvc portssvc.UserSvcFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.ClientID,
		userSvc:  userSvc,
		tokenSvc: tokenSvc,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// AuthCodeURL returns the Google consent page URL for the given CSRF state.
func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode swaps the authorization code for the Google profile, resolves
// it to a local user and issues a token pair.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*dto.AuthResponse, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code for token")
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	userInfo, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userSvc.FindOrCreateOAuthUser(ctx, ProviderGoogle, userInfo.ID, userInfo.Email, userInfo.Name)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Google sign-in completed", slog.String("user_id", user.UserID))
	return s.tokenSvc.IssueTokenPair(ctx, user)
}

// fetchUserInfo resolves the Google profile, preferring the signed ID token
// over a userinfo round trip.
func (s *googleOAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		payload, err := idtoken.Validate(ctx, idToken, s.clientID)
		if err == nil {
			info := &domain.GoogleUserInfo{ID: payload.Subject}
			if email, ok := payload.Claims["email"].(string); ok {
				info.Email = email
			}
			if name, ok := payload.Claims["name"].(string); ok {
				info.Name = name
			}
			if info.Email != "" {
				return info, nil
			}
		} else {
			s.LogWarn(ctx, "Google ID token validation failed, falling back to userinfo", slog.String("error", err.Error()))
		}
	}

	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		s.LogError(ctx, err, "Failed to get user info from google")
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &userInfo, nil
}
