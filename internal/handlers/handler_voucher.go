package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/core/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/middleware"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

// RegisterVoucherRoutes sets up the voucher routes under the authenticated group.
func RegisterVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)
	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.PATCH("/:voucherID", h.updateVoucher)
		vouchers.POST("/:voucherID/reverse", h.reverseVoucher)
	}
}

// isVoucherRejection reports whether err is a write-boundary validation failure.
func isVoucherRejection(err error) bool {
	for _, target := range []error{
		apperrors.ErrValidation,
		services.ErrVoucherUnbalanced,
		services.ErrVoucherMinLines,
		services.ErrVoucherMinAccounts,
		services.ErrLineAmountInvalid,
		services.ErrUnknownKind,
		services.ErrNarrationMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// createVoucher godoc
// @Summary Post a new voucher
// @Description Creates a balanced double-entry voucher with at least two lines
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher with its lines"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Unbalanced or otherwise invalid voucher"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to post voucher"
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), userID, req, userID)
	if err != nil {
		if isVoucherRejection(err) {
			logger.Warn("Voucher rejected at write boundary", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create voucher in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to post voucher"})
		return
	}

	logger.Info("Voucher posted", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Returns one page of the tenant's vouchers, newest first. Reversal pairs are hidden unless includeReversals is set.
// @Tags vouchers
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Opaque pagination token from the previous page"
// @Param includeReversals query bool false "Include reversed vouchers and their reversals"
// @Param kind query string false "Filter by voucher kind (INVOICE, BILL, CREDIT_NOTE, DEBIT_NOTE, JOURNAL)"
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list vouchers"
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid voucher list params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vouchers, nextToken, err := h.voucherService.ListVouchers(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, services.ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list vouchers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListVouchersResponse{
		Vouchers:  dto.ToVoucherResponses(vouchers),
		NextToken: nextToken,
	})
}

// getVoucher godoc
// @Summary Get a voucher
// @Description Retrieves one voucher with its lines by voucher ID
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve voucher"
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), userID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve voucher"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// updateVoucher godoc
// @Summary Update voucher header fields
// @Description Changes the date or narration of a posted voucher. Lines are immutable; post a reversal to correct amounts.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "Fields to update"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Voucher is no longer editable"
// @Router /vouchers/{voucherID} [patch]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), userID, voucherID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		case errors.Is(err, services.ErrNotPosted):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update voucher"})
		}
		return
	}

	logger.Info("Voucher updated", slog.String("voucher_id", voucherID))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// reverseVoucher godoc
// @Summary Reverse a voucher
// @Description Posts a mirror journal voucher cancelling the original and links the pair. A voucher can be reversed at most once.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID to reverse"
// @Param reversal body dto.ReverseVoucherRequest true "Reversal date and optional narration"
// @Success 201 {object} dto.VoucherResponse "The reversal voucher"
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Already reversed, or the target is itself a reversal"
// @Router /vouchers/{voucherID}/reverse [post]
func (h *voucherHandler) reverseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.ReverseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reversal, err := h.voucherService.ReverseVoucher(c.Request.Context(), userID, voucherID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		case errors.Is(err, apperrors.ErrConflict),
			errors.Is(err, services.ErrAlreadyReversed),
			errors.Is(err, services.ErrReverseOfReversal):
			logger.Warn("Reversal rejected", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to reverse voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reverse voucher"})
		}
		return
	}

	logger.Info("Voucher reversed",
		slog.String("voucher_id", voucherID),
		slog.String("reversal_id", reversal.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(reversal))
}
