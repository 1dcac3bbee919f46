package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/core/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/handlers"
	"github.com/gstbooks/gstbooks_backend/internal/middleware"
)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) CreateVoucher(ctx context.Context, tenantID string, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	args := m.Called(ctx, tenantID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, tenantID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, tenantID string, params dto.ListVouchersParams) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Voucher), next, args.Error(2)
}

func (m *MockVoucherService) UpdateVoucher(ctx context.Context, tenantID, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error) {
	args := m.Called(ctx, tenantID, voucherID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ReverseVoucher(ctx context.Context, tenantID, voucherID string, req dto.ReverseVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	args := m.Called(ctx, tenantID, voucherID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Test Suite ---
type VoucherHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockVoucherService *MockVoucherService
	jwtSecret          string
}

func (suite *VoucherHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gstbooks-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockVoucherService = new(MockVoucherService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterVoucherRoutes(v1, suite.mockVoucherService)
}

func (suite *VoucherHandlerTestSuite) authedRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleVoucher(tenantID string) *domain.Voucher {
	return &domain.Voucher{
		VoucherID: domain.PrefixInvoice + uuid.NewString(),
		TenantID:  tenantID,
		Date:      time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		Narration: "April invoice",
		Amount:    decimal.RequireFromString("118"),
		Status:    domain.Posted,
		Lines: []domain.VoucherLine{
			{LineID: uuid.NewString(), Account: "1100", Debit: "118", Credit: "0"},
			{LineID: uuid.NewString(), Account: "4010", Debit: "0", Credit: "100"},
			{LineID: uuid.NewString(), Account: "2100", Debit: "0", Credit: "18"},
		},
	}
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_Success() {
	voucher := sampleVoucher("user-1")
	suite.mockVoucherService.On("CreateVoucher",
		mock.Anything, "user-1", mock.AnythingOfType("dto.CreateVoucherRequest"), "user-1",
	).Return(voucher, nil).Once()

	body := dto.CreateVoucherRequest{
		Kind:      "INVOICE",
		Date:      voucher.Date,
		Narration: "April invoice",
		Lines: []dto.CreateVoucherLineRequest{
			{AccountCode: "1100", Debit: "118"},
			{AccountCode: "4010", Credit: "100"},
			{AccountCode: "2100", Credit: "18"},
		},
	}

	w := suite.authedRequest(http.MethodPost, "/api/v1/vouchers", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(voucher.VoucherID, resp.VoucherID)
	suite.Equal("INVOICE", resp.Kind)
	suite.Equal("118.00", resp.Amount)
	suite.Len(resp.Lines, 3)
	suite.mockVoucherService.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_UnbalancedReturns400() {
	suite.mockVoucherService.On("CreateVoucher",
		mock.Anything, "user-1", mock.AnythingOfType("dto.CreateVoucherRequest"), "user-1",
	).Return(nil, fmt.Errorf("%w: debits sum is 118 and credits sum is 117", services.ErrVoucherUnbalanced)).Once()

	body := dto.CreateVoucherRequest{
		Kind: "INVOICE",
		Date: time.Now(),
		Lines: []dto.CreateVoucherLineRequest{
			{AccountCode: "1100", Debit: "118"},
			{AccountCode: "4010", Credit: "117"},
		},
	}

	w := suite.authedRequest(http.MethodPost, "/api/v1/vouchers", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "do not balance")
}

func (suite *VoucherHandlerTestSuite) TestCreateVoucher_MissingAuthReturns401() {
	body := dto.CreateVoucherRequest{Kind: "INVOICE", Date: time.Now()}
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/vouchers", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockVoucherService.AssertNotCalled(suite.T(), "CreateVoucher")
}

func (suite *VoucherHandlerTestSuite) TestGetVoucher_NotFoundReturns404() {
	suite.mockVoucherService.On("GetVoucherByID",
		mock.Anything, "user-1", "INV-missing",
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/vouchers/INV-missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestListVouchers_PassesQueryParams() {
	next := "token-abc"
	vouchers := []domain.Voucher{*sampleVoucher("user-1")}
	suite.mockVoucherService.On("ListVouchers",
		mock.Anything, "user-1",
		mock.MatchedBy(func(p dto.ListVouchersParams) bool {
			return p.Limit == 5 && p.IncludeReversals
		}),
	).Return(vouchers, &next, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/vouchers?limit=5&includeReversals=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListVouchersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Vouchers, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-abc", *resp.NextToken)
}

func (suite *VoucherHandlerTestSuite) TestReverseVoucher_ConflictReturns409() {
	suite.mockVoucherService.On("ReverseVoucher",
		mock.Anything, "user-1", "INV-1", mock.AnythingOfType("dto.ReverseVoucherRequest"), "user-1",
	).Return(nil, fmt.Errorf("%w: reversed by JV-9", services.ErrAlreadyReversed)).Once()

	body := dto.ReverseVoucherRequest{Date: time.Now()}
	w := suite.authedRequest(http.MethodPost, "/api/v1/vouchers/INV-1/reverse", body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestReverseVoucher_Success() {
	original := sampleVoucher("user-1")
	reversal := sampleVoucher("user-1")
	reversal.VoucherID = domain.PrefixJournal + uuid.NewString()
	reversal.Reverses = &original.VoucherID

	suite.mockVoucherService.On("ReverseVoucher",
		mock.Anything, "user-1", original.VoucherID, mock.AnythingOfType("dto.ReverseVoucherRequest"), "user-1",
	).Return(reversal, nil).Once()

	body := dto.ReverseVoucherRequest{Date: time.Now(), Narration: "undo"}
	w := suite.authedRequest(http.MethodPost, "/api/v1/vouchers/"+original.VoucherID+"/reverse", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JOURNAL", resp.Kind)
	suite.Require().NotNil(resp.Reverses)
	suite.Equal(original.VoucherID, *resp.Reverses)
}

func TestVoucherHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}
