package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/core/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

// MockAccountService stubs the account facade for user registration tests.
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, tenantID, code string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SeedDefaultChart(ctx context.Context, tenantID, creatorUserID string) error {
	args := m.Called(ctx, tenantID, creatorUserID)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	userRepo   *MockUserRepository
	accountSvc *MockAccountService
	service    portssvc.UserSvcFacade
	ctx        context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountSvc = new(MockAccountService)
	s.service = services.NewUserService(s.userRepo, s.accountSvc)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegisterUserSeedsChart() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "ca@example.in").Return(nil, apperrors.ErrNotFound)
	s.userRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)
	s.accountSvc.On("SeedDefaultChart", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	user, err := s.service.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Email:    "ca@example.in",
		Name:     "CA Firm",
		Password: "s3cret-pass",
	})

	s.NoError(err)
	s.NotEmpty(user.UserID)
	s.Equal(services.ProviderLocal, user.AuthProvider)
	s.NotEqual("s3cret-pass", user.PasswordHash)
	s.True(utils.CheckPasswordHash("s3cret-pass", user.PasswordHash))
	s.accountSvc.AssertCalled(s.T(), "SeedDefaultChart", mock.Anything, user.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestRegisterUserDuplicateEmail() {
	existing := &domain.User{UserID: "u1", Email: "ca@example.in"}
	s.userRepo.On("FindUserByEmail", mock.Anything, "ca@example.in").Return(existing, nil)

	_, err := s.service.RegisterUser(s.ctx, dto.RegisterUserRequest{
		Email:    "ca@example.in",
		Name:     "CA Firm",
		Password: "s3cret-pass",
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAuthenticateUserWrongPassword() {
	hash, err := utils.HashPassword("right-password")
	s.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "ca@example.in", PasswordHash: hash}
	s.userRepo.On("FindUserByEmail", mock.Anything, "ca@example.in").Return(user, nil)

	_, err = s.service.AuthenticateUser(s.ctx, "ca@example.in", "wrong-password")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUserUnknownEmail() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "nobody@example.in").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.AuthenticateUser(s.ctx, "nobody@example.in", "whatever")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUserLinksByEmail() {
	existing := &domain.User{UserID: "u1", Email: "ca@example.in", AuthProvider: services.ProviderLocal}
	s.userRepo.On("FindUserByProviderID", mock.Anything, services.ProviderGoogle, "goog-123").Return(nil, apperrors.ErrNotFound)
	s.userRepo.On("FindUserByEmail", mock.Anything, "ca@example.in").Return(existing, nil)
	s.userRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)

	user, err := s.service.FindOrCreateOAuthUser(s.ctx, services.ProviderGoogle, "goog-123", "ca@example.in", "CA Firm")

	s.NoError(err)
	s.Equal("u1", user.UserID)
	s.Equal(services.ProviderGoogle, user.AuthProvider)
	s.Require().NotNil(user.ProviderUserID)
	s.Equal("goog-123", *user.ProviderUserID)
}

type TokenServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.TokenSvcFacade
	ctx      context.Context
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.service = services.NewTokenService(s.userRepo, services.TokenConfig{
		JWTSecret:     "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "gstbooks-test",
	})
	s.ctx = context.Background()
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestIssueTokenPair() {
	user := &domain.User{UserID: "u1", Email: "ca@example.in", Name: "CA Firm", AuthProvider: services.ProviderLocal}

	var storedHash *string
	s.userRepo.On("UpdateRefreshToken", mock.Anything, "u1", mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(*string)
		}).Return(nil)

	resp, err := s.service.IssueTokenPair(s.ctx, user)

	s.NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal(int64(900), resp.ExpiresIn)
	s.Equal("u1", resp.User.UserID)

	// Only the hash of the refresh token is persisted.
	s.Require().NotNil(storedHash)
	s.Equal(utils.HashRefreshToken(resp.RefreshToken), *storedHash)
	s.NotEqual(resp.RefreshToken, *storedHash)

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, "test-secret")
	s.NoError(err)
	s.Equal("u1", claims.Subject)
}

func (s *TokenServiceTestSuite) TestRefreshTokenPairRotates() {
	raw := "raw-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiry := time.Now().UTC().Add(time.Hour)
	user := &domain.User{UserID: "u1", Email: "ca@example.in", RefreshTokenHash: &hash, RefreshExpiresAt: &expiry}

	s.userRepo.On("FindUserByRefreshTokenHash", mock.Anything, hash).Return(user, nil)
	s.userRepo.On("UpdateRefreshToken", mock.Anything, "u1", mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).Return(nil)

	resp, err := s.service.RefreshTokenPair(s.ctx, raw)

	s.NoError(err)
	s.NotEqual(raw, resp.RefreshToken)
}

func (s *TokenServiceTestSuite) TestRefreshTokenPairExpired() {
	raw := "raw-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiry := time.Now().UTC().Add(-time.Hour)
	user := &domain.User{UserID: "u1", RefreshTokenHash: &hash, RefreshExpiresAt: &expiry}

	s.userRepo.On("FindUserByRefreshTokenHash", mock.Anything, hash).Return(user, nil)
	s.userRepo.On("UpdateRefreshToken", mock.Anything, "u1", (*string)(nil), (*time.Time)(nil)).Return(nil)

	_, err := s.service.RefreshTokenPair(s.ctx, raw)

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRefreshTokenPairUnknownToken() {
	s.userRepo.On("FindUserByRefreshTokenHash", mock.Anything, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.RefreshTokenPair(s.ctx, "bogus")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}
