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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
	portssvc "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/services"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/dto"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/handlers"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) GetExchangeRate(ctx context.Context, fromCode, toCode string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) FormatAmount(amount decimal.Decimal, currencyCode string) (string, error) {
	args := m.Called(amount, currencyCode)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Test Suite ---
type ConversionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockConversionService
}

func (suite *ConversionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	suite.mockService = new(MockConversionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterConversionRoutes(v1, suite.mockService)
}

func (suite *ConversionHandlerTestSuite) TestGetExchangeRate_Success() {
	rate := decimal.NewFromFloat(3.75)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.mockService.On("GetExchangeRate",
		mock.Anything, "USD", "SAR",
		mock.MatchedBy(func(d time.Time) bool { return d.Equal(day) }),
	).Return(rate, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/USD/SAR?date=2024-05-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.FromCurrencyCode)
	suite.Equal("SAR", resp.ToCurrencyCode)
	suite.Equal("2024-05-01", resp.Date)
	suite.True(resp.Rate.Equal(rate))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConversionHandlerTestSuite) TestGetExchangeRate_InvalidDate() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/USD/SAR?date=01-05-2024", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetExchangeRate")
}

func (suite *ConversionHandlerTestSuite) TestGetExchangeRate_InvalidCurrency() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "DOGE", "SAR", mock.Anything).
		Return(decimal.Zero, fmt.Errorf("%w: DOGE", apperrors.ErrInvalidCurrency)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/DOGE/SAR", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConversionHandlerTestSuite) TestGetExchangeRate_RateLimited() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "USD", "EGP", mock.Anything).
		Return(decimal.Zero, apperrors.ErrRateLimitExceeded).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/USD/EGP", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *ConversionHandlerTestSuite) TestGetExchangeRate_ProviderFailure() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "USD", "EGP", mock.Anything).
		Return(decimal.Zero, fmt.Errorf("%w: unexpected status 500", apperrors.ErrProvider)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates/USD/EGP", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *ConversionHandlerTestSuite) TestConvertAmount_Success() {
	amount := decimal.NewFromInt(200)
	rate := decimal.NewFromFloat(3.75)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.mockService.On("GetExchangeRate",
		mock.Anything, "USD", "SAR",
		mock.MatchedBy(func(d time.Time) bool { return d.Equal(day) }),
	).Return(rate, nil).Once()
	suite.mockService.On("FormatAmount",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(750)) }),
		"SAR",
	).Return("SR750.00", nil).Once()

	body, _ := json.Marshal(dto.ConvertAmountRequest{
		Amount:           amount,
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "SAR",
		Date:             "2024-05-01",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertAmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromInt(750)))
	suite.True(resp.Rate.Equal(rate))
	suite.Equal("SR750.00", resp.Formatted)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConversionHandlerTestSuite) TestConvertAmount_UnsupportedCurrencyRejectedAtBinding() {
	body := []byte(`{"amount": "100", "fromCurrencyCode": "DOGE", "toCurrencyCode": "USD"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetExchangeRate")
}

func (suite *ConversionHandlerTestSuite) TestConvertAmount_MissingAmount() {
	body := []byte(`{"fromCurrencyCode": "USD", "toCurrencyCode": "SAR"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetExchangeRate")
}

func TestConversionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionHandlerTestSuite))
}
