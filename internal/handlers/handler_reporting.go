package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for ledger reports. Every report is
// recomputed from the full voucher snapshot on each call.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// registerReportingRoutes sets up the report routes under the authenticated group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/cost-centre-summary", h.costCentreSummary)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/sales-turnover", h.salesTurnover)
		reports.GET("/purchase-turnover", h.purchaseTurnover)
	}
}

// bindRange parses the optional from/to date window, replying 400 on bad input.
func (h *reportingHandler) bindRange(c *gin.Context) (dto.ReportRangeParams, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range, expected YYYY-MM-DD"})
		return params, false
	}
	return params, true
}

// trialBalance godoc
// @Summary Trial balance
// @Description Aggregates every voucher line into per-account balances and checks that total debits equal total credits
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Failed to compute trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := h.bindRange(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// costCentreSummary godoc
// @Summary Cost centre summary
// @Description Rolls up income and expense per cost centre over the date window
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.CostCentreSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Router /reports/cost-centre-summary [get]
func (h *reportingHandler) costCentreSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := h.bindRange(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.reportingService.CostCentreSummary(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to compute cost centre summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCentreSummaryResponse(rows))
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Description Reports revenue and expense account totals with the resulting net profit for the date window
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Failed to compute profit and loss"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := h.bindRange(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to compute profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute profit and loss"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// salesTurnover godoc
// @Summary Sales turnover
// @Description Sums invoice vouchers gross and nets off credit notes. Reversal pairs are excluded.
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.TurnoverResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Failed to compute turnover"
// @Router /reports/sales-turnover [get]
func (h *reportingHandler) salesTurnover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := h.bindRange(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	analysis, err := h.reportingService.SalesTurnover(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to compute sales turnover", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute turnover"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTurnoverResponse(analysis))
}

// purchaseTurnover godoc
// @Summary Purchase turnover
// @Description Sums bill vouchers gross and nets off debit notes. Reversal pairs are excluded.
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.TurnoverResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Failed to compute turnover"
// @Router /reports/purchase-turnover [get]
func (h *reportingHandler) purchaseTurnover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := h.bindRange(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	analysis, err := h.reportingService.PurchaseTurnover(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to compute purchase turnover", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute turnover"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTurnoverResponse(analysis))
}
