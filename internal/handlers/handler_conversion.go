package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/apperrors"
	portssvc "github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/core/ports/services"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/dto"
	"github.com/mohamedabdelmoniem10/MoMoneyTracker/internal/middleware"
)

const dayFormat = "2006-01-02"

// conversionHandler handles HTTP requests for rate resolution and conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers rate and conversion routes.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:from/:to", h.getExchangeRate)
	}
	rg.POST("/convert", h.convertAmount)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Resolves the exchange rate for a currency pair on a calendar day (defaults to today)
// @Tags rates
// @Produce  json
// @Param   from path  string true  "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path  string true  "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   date query string false "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or date"
// @Failure 429 {object} map[string]string "Provider call budget exhausted"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /rates/{from}/{to} [get]
func (h *conversionHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dayFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	rate, err := h.conversionService.GetExchangeRate(c.Request.Context(), fromCode, toCode, date)
	if err != nil {
		respondConversionError(c, logger, err, "Failed to resolve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Date:             date.UTC().Format(dayFormat),
		Rate:             rate,
	})
}

// convertAmount godoc
// @Summary Convert a monetary amount
// @Description Converts an amount between two currencies using the rate for the given calendar day
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertAmountRequest true "Conversion details"
// @Success 200 {object} dto.ConvertAmountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 429 {object} map[string]string "Provider call budget exhausted"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /convert [post]
func (h *conversionHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		// Format already validated by the binding tag.
		date, _ = time.Parse(dayFormat, req.Date)
	}

	logger = logger.With(
		slog.String("from_code", req.FromCurrencyCode),
		slog.String("to_code", req.ToCurrencyCode),
		slog.Any("amount", req.Amount),
	)

	rate, err := h.conversionService.GetExchangeRate(c.Request.Context(), req.FromCurrencyCode, req.ToCurrencyCode, date)
	if err != nil {
		respondConversionError(c, logger, err, "Failed to convert amount")
		return
	}
	converted := req.Amount.Mul(rate)

	formatted, err := h.conversionService.FormatAmount(converted, req.ToCurrencyCode)
	if err != nil {
		respondConversionError(c, logger, err, "Failed to format converted amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertAmountResponse{
		Amount:           req.Amount,
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Date:             date.UTC().Format(dayFormat),
		Rate:             rate,
		ConvertedAmount:  converted,
		Formatted:        formatted,
	})
}

// respondConversionError maps the rate resolution error taxonomy to HTTP
// status codes.
func respondConversionError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCurrency), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error resolving rate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateLimitExceeded):
		logger.Warn("Provider call budget exhausted", slog.String("error", err.Error()))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrProvider), errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Error("Rate provider failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
