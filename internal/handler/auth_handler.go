package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/middleware"
	"github.com/elitebooker/elitebooker-backend/internal/service"
	"github.com/elitebooker/elitebooker-backend/pkg/response"
)

// CookieOptions controls how the session cookie is written
type CookieOptions struct {
	Name   string
	Domain string
	Secure bool
	TTL    time.Duration
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	cookie      CookieOptions
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// setSessionCookie writes the session cookie. HttpOnly keeps it away from
// page scripts; SameSite=Lax lets top-level navigation carry it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, true)
}

// clearSessionCookie expires the session cookie
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// Login handles credential verification and session issuance
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid email or password"))
			return
		}
		if errors.Is(err, service.ErrTooManyAttempts) {
			c.JSON(http.StatusTooManyRequests, response.TooManyRequests("Too many login attempts, please try again later"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, response.Success(result))
}

// Logout clears the session cookie. The token itself simply expires.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Logged out"}))
}

// Me returns the caller's resolved principal
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.MeResponse{
		AdminID:   principal.AdminID,
		Email:     principal.Email,
		Role:      string(principal.Role),
		TenantID:  principal.TenantID,
		IssuedAt:  principal.IssuedAt.Format(time.RFC3339),
		ExpiresAt: principal.ExpiresAt.Format(time.RFC3339),
	}))
}

// Refresh issues a fresh token for a still-valid session
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), principal)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			h.clearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Session is no longer valid"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, response.Success(result))
}
