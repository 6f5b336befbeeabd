package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simonindia/hr-portal/internal/api/metrics"
	"github.com/simonindia/hr-portal/internal/api/middleware"
	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// AuthHandler handles login, logout and session-status checks.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type checkAuthResponse struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// Login authenticates the admin account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: "Invalid credentials"})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Message: "Login successful", Token: token})
}

// Logout invalidates the caller's session. Safe to call without a token or
// with one that is already gone.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successEnvelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c.Request())
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successEnvelope{Success: true, Message: "Logged out successfully"})
}

// CheckAuth reports the current session status. Never errors: an invalid or
// absent token simply reads as unauthenticated.
//
// @Summary      Check session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkAuthResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	token := middleware.BearerToken(c.Request())
	if token == "" {
		return c.JSON(http.StatusOK, checkAuthResponse{Success: true, Authenticated: false})
	}

	username, err := h.authService.Authenticate(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusOK, checkAuthResponse{Success: true, Authenticated: false})
	}

	return c.JSON(http.StatusOK, checkAuthResponse{Success: true, Authenticated: true, Username: username})
}
