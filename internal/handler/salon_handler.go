package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/middleware"
	"github.com/elitebooker/elitebooker-backend/internal/service"
	"github.com/elitebooker/elitebooker-backend/pkg/response"
)

// SalonHandler handles salon provisioning and management HTTP requests
type SalonHandler struct {
	salonService service.SalonService
	authHandler  *AuthHandler
}

// NewSalonHandler creates a new SalonHandler
func NewSalonHandler(salonService service.SalonService, authHandler *AuthHandler) *SalonHandler {
	return &SalonHandler{
		salonService: salonService,
		authHandler:  authHandler,
	}
}

// Signup handles new salon registration
// POST /api/v1/signup
func (h *SalonHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if valid, msg := req.ValidateSlug(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_SLUG", msg))
		return
	}

	result, err := h.salonService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlug) {
			c.JSON(http.StatusBadRequest, response.Error("INVALID_SLUG", "Slug must be lowercase letters, digits and hyphens"))
			return
		}
		if errors.Is(err, service.ErrSalonAlreadyExists) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Salon with this slug already exists"))
			return
		}
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Account with this email already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	h.authHandler.setSessionCookie(c, result.Session.Token)
	c.JSON(http.StatusCreated, response.Success(result))
}

// Get returns the caller's salon
// GET /api/v1/salon
func (h *SalonHandler) Get(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.salonService.Get(c.Request.Context(), principal.TenantID)
	if err != nil {
		if errors.Is(err, service.ErrSalonNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Salon not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update updates the caller's salon
// PUT /api/v1/salon
func (h *SalonHandler) Update(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	result, err := h.salonService.Update(c.Request.Context(), principal.TenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", "At least one field must be provided for update"))
			return
		}
		if errors.Is(err, service.ErrSalonNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Salon not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List returns salons across the platform
// GET /api/v1/platform/salons
func (h *SalonHandler) List(c *gin.Context) {
	var query dto.ListSalonsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.salonService.List(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Deactivate soft deletes a salon platform-wide
// DELETE /api/v1/platform/salons/:id
func (h *SalonHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Salon ID is required"))
		return
	}

	if err := h.salonService.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSalonNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Salon not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Salon deactivated"}))
}
