package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
	"github.com/gstbooks/gstbooks_backend/internal/middleware"
	"github.com/gstbooks/gstbooks_backend/internal/utils"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler drives the Google sign-in flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
}

func newGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
	}
}

// registerGoogleOAuthRoutes sets up the public Google sign-in routes.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuthSvc)
	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.loginGoogle)
		google.GET("/callback", h.callbackGoogle)
		google.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// exchangeCodeRequest is the body for the SPA-driven code exchange.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// loginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent page with a CSRF state cookie
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse "Failed to start sign-in"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.AuthCodeURL(state))
}

// callbackGoogle godoc
// @Summary Google sign-in callback
// @Description Verifies the CSRF state, exchanges the authorization code and returns a token pair
// @Tags oauth
// @Produce json
// @Param state query string true "CSRF state from the login redirect"
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "State mismatch or invalid code"
// @Failure 401 {object} ErrorResponse "Google rejected the code"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	h.exchange(c, code)
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code
// @Description Exchanges the authorization code collected by the frontend for a token pair
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired authorization code"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	h.exchange(c, req.Code)
}

func (h *googleOAuthHandler) exchange(c *gin.Context, code string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pair, err := h.googleOAuthService.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "bad request") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		logger.Error("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", pair.User.UserID))
	c.JSON(http.StatusOK, pair)
}
