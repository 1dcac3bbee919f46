package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/core/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	service     portssvc.AccountSvcFacade
	ctx         context.Context
	tenantID    string
	userID      string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.accountRepo)
	s.ctx = context.Background()
	s.tenantID = "tenant-1"
	s.userID = "tenant-1"
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccountSuccess() {
	s.accountRepo.On("FindAccountByCode", mock.Anything, s.tenantID, "6010").Return(nil, apperrors.ErrNotFound)
	s.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, s.tenantID, dto.CreateAccountRequest{
		Code:     "6010",
		Name:     "Freight",
		Category: domain.Expense,
	}, s.userID)

	s.NoError(err)
	s.Equal("6010", account.Code)
	s.True(account.IsActive)
	s.Equal(s.tenantID, account.TenantID)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccountDuplicateCode() {
	existing := &domain.Account{Code: "6010", TenantID: s.tenantID}
	s.accountRepo.On("FindAccountByCode", mock.Anything, s.tenantID, "6010").Return(existing, nil)

	_, err := s.service.CreateAccount(s.ctx, s.tenantID, dto.CreateAccountRequest{
		Code:     "6010",
		Name:     "Freight",
		Category: domain.Expense,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccountInvalidCategory() {
	_, err := s.service.CreateAccount(s.ctx, s.tenantID, dto.CreateAccountRequest{
		Code:     "6010",
		Name:     "Freight",
		Category: "CONTRA",
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestSeedDefaultChart() {
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return([]domain.Account{}, nil)

	var seeded []domain.Account
	s.accountRepo.On("SaveAccounts", mock.Anything, mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) {
			seeded = args.Get(1).([]domain.Account)
		}).Return(nil)

	err := s.service.SeedDefaultChart(s.ctx, s.tenantID, s.userID)

	s.NoError(err)
	s.NotEmpty(seeded)

	byCode := make(map[string]domain.Account, len(seeded))
	categories := make(map[domain.AccountCategory]bool)
	for _, a := range seeded {
		s.Equal(s.tenantID, a.TenantID)
		s.True(a.IsActive)
		byCode[a.Code] = a
		categories[a.Category] = true
	}
	s.Contains(byCode, "1010")
	s.Contains(byCode, "4010")
	s.Contains(byCode, "2100")
	s.Len(categories, 5)
}

func (s *AccountServiceTestSuite) TestSeedDefaultChartSkipsExisting() {
	existing := []domain.Account{{Code: "1010", TenantID: s.tenantID}}
	s.accountRepo.On("ListAccounts", mock.Anything, s.tenantID).Return(existing, nil)

	err := s.service.SeedDefaultChart(s.ctx, s.tenantID, s.userID)

	s.NoError(err)
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestUpdateAccountDeactivates() {
	account := &domain.Account{Code: "5100", TenantID: s.tenantID, Name: "Rent", Category: domain.Expense, IsActive: true}
	s.accountRepo.On("FindAccountByCode", mock.Anything, s.tenantID, "5100").Return(account, nil)
	s.accountRepo.On("UpdateAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	inactive := false
	updated, err := s.service.UpdateAccount(s.ctx, s.tenantID, "5100", dto.UpdateAccountRequest{IsActive: &inactive}, s.userID)

	s.NoError(err)
	s.False(updated.IsActive)
	s.Equal(domain.Expense, updated.Category)
	s.accountRepo.AssertExpectations(s.T())
}
