package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/dto"
	"github.com/gstbooks/gstbooks_backend/internal/middleware"
)

// costCentreHandler handles HTTP requests for cost centres.
type costCentreHandler struct {
	costCentreService portssvc.CostCentreSvcFacade
}

func newCostCentreHandler(costCentreService portssvc.CostCentreSvcFacade) *costCentreHandler {
	return &costCentreHandler{
		costCentreService: costCentreService,
	}
}

// registerCostCentreRoutes sets up the cost centre routes under the authenticated group.
func registerCostCentreRoutes(rg *gin.RouterGroup, costCentreService portssvc.CostCentreSvcFacade) {
	h := newCostCentreHandler(costCentreService)
	centres := rg.Group("/cost-centres")
	{
		centres.POST("", h.createCostCentre)
		centres.GET("", h.listCostCentres)
		centres.GET("/:costCentreID", h.getCostCentre)
		centres.PATCH("/:costCentreID", h.updateCostCentre)
	}
}

// createCostCentre godoc
// @Summary Add a cost centre
// @Description Creates a cost centre for tagging voucher lines
// @Tags cost-centres
// @Accept json
// @Produce json
// @Param costCentre body dto.CreateCostCentreRequest true "Cost centre details"
// @Success 201 {object} dto.CostCentreResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Router /cost-centres [post]
func (h *costCentreHandler) createCostCentre(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCostCentreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cc, err := h.costCentreService.CreateCostCentre(c.Request.Context(), userID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create cost centre", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create cost centre"})
		return
	}

	logger.Info("Cost centre created", slog.String("cost_centre_id", cc.CostCentreID))
	c.JSON(http.StatusCreated, dto.ToCostCentreResponse(cc))
}

// listCostCentres godoc
// @Summary List cost centres
// @Description Returns the tenant's cost centres ordered by name
// @Tags cost-centres
// @Produce json
// @Success 200 {array} dto.CostCentreResponse
// @Failure 500 {object} ErrorResponse "Failed to list cost centres"
// @Router /cost-centres [get]
func (h *costCentreHandler) listCostCentres(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	centres, err := h.costCentreService.ListCostCentres(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list cost centres", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cost centres"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCentreResponses(centres))
}

// getCostCentre godoc
// @Summary Get a cost centre
// @Description Retrieves one cost centre by its ID
// @Tags cost-centres
// @Produce json
// @Param costCentreID path string true "Cost centre ID"
// @Success 200 {object} dto.CostCentreResponse
// @Failure 404 {object} ErrorResponse "Cost centre not found"
// @Router /cost-centres/{costCentreID} [get]
func (h *costCentreHandler) getCostCentre(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCentreID := c.Param("costCentreID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cc, err := h.costCentreService.GetCostCentreByID(c.Request.Context(), userID, costCentreID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cost centre not found"})
			return
		}
		logger.Error("Failed to get cost centre", slog.String("error", err.Error()), slog.String("cost_centre_id", costCentreID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve cost centre"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCentreResponse(cc))
}

// updateCostCentre godoc
// @Summary Update a cost centre
// @Description Changes the name, description or active flag of a cost centre
// @Tags cost-centres
// @Accept json
// @Produce json
// @Param costCentreID path string true "Cost centre ID"
// @Param costCentre body dto.UpdateCostCentreRequest true "Fields to update"
// @Success 200 {object} dto.CostCentreResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 404 {object} ErrorResponse "Cost centre not found"
// @Router /cost-centres/{costCentreID} [patch]
func (h *costCentreHandler) updateCostCentre(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCentreID := c.Param("costCentreID")

	var req dto.UpdateCostCentreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cc, err := h.costCentreService.UpdateCostCentre(c.Request.Context(), userID, costCentreID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cost centre not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update cost centre", slog.String("error", err.Error()), slog.String("cost_centre_id", costCentreID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update cost centre"})
		}
		return
	}

	logger.Info("Cost centre updated", slog.String("cost_centre_id", costCentreID))
	c.JSON(http.StatusOK, dto.ToCostCentreResponse(cc))
}
