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

// ConsentHandler handles consent template HTTP requests
type ConsentHandler struct {
	consentService service.ConsentService
}

// NewConsentHandler creates a new ConsentHandler
func NewConsentHandler(consentService service.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

// respondConsentError maps consent service errors onto the wire
func respondConsentError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrEmptyUpdate) {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", "At least one field must be provided for update"))
		return
	}
	if errors.Is(err, service.ErrConsentTemplateNotFound) {
		c.JSON(http.StatusNotFound, response.NotFound("Consent template not found"))
		return
	}
	if errors.Is(err, service.ErrInvalidConsentTransition) {
		c.JSON(http.StatusConflict, response.InvalidTransition("Template status does not allow this operation"))
		return
	}
	c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
}

// Create handles consent template creation
// POST /api/v1/consent-templates
func (h *ConsentHandler) Create(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.CreateConsentTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.consentService.Create(c.Request.Context(), principal.TenantID, &req)
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Get handles retrieving one consent template
// GET /api/v1/consent-templates/:id
func (h *ConsentHandler) Get(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.consentService.Get(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing the salon's consent templates
// GET /api/v1/consent-templates
func (h *ConsentHandler) List(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var query dto.ListConsentTemplatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.consentService.List(c.Request.Context(), principal.TenantID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles editing a draft template
// PUT /api/v1/consent-templates/:id
func (h *ConsentHandler) Update(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateConsentTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	result, err := h.consentService.Update(c.Request.Context(), principal.TenantID, c.Param("id"), &req)
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Publish handles the draft -> published transition
// POST /api/v1/consent-templates/:id/publish
func (h *ConsentHandler) Publish(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.consentService.Publish(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Archive handles the published -> archived transition
// POST /api/v1/consent-templates/:id/archive
func (h *ConsentHandler) Archive(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.consentService.Archive(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles removing a draft
// DELETE /api/v1/consent-templates/:id
func (h *ConsentHandler) Delete(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	if err := h.consentService.Delete(c.Request.Context(), principal.TenantID, c.Param("id")); err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Draft deleted"}))
}

// NewVersion handles forking a published template into a new draft version
// POST /api/v1/consent-templates/:id/versions
func (h *ConsentHandler) NewVersion(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.consentService.NewVersion(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		respondConsentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
