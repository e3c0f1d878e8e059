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

// CatalogHandler handles service, specialist and hero-section HTTP requests
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateService handles service creation
// POST /api/v1/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.catalogService.CreateService(c.Request.Context(), principal.TenantID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetService handles retrieving one service
// GET /api/v1/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.catalogService.GetService(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Service not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListServices handles listing the salon's services
// GET /api/v1/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.catalogService.ListServices(c.Request.Context(), principal.TenantID, includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateService handles service update
// PUT /api/v1/services/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	result, err := h.catalogService.UpdateService(c.Request.Context(), principal.TenantID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", "At least one field must be provided for update"))
			return
		}
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Service not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// DeleteService handles service deletion
// DELETE /api/v1/services/:id
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	if err := h.catalogService.DeleteService(c.Request.Context(), principal.TenantID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Service not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Service deleted"}))
}

// CreateSpecialist handles specialist creation
// POST /api/v1/specialists
func (h *CatalogHandler) CreateSpecialist(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.catalogService.CreateSpecialist(c.Request.Context(), principal.TenantID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetSpecialist handles retrieving one specialist
// GET /api/v1/specialists/:id
func (h *CatalogHandler) GetSpecialist(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.catalogService.GetSpecialist(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSpecialistNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Specialist not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListSpecialists handles listing the salon's specialists
// GET /api/v1/specialists
func (h *CatalogHandler) ListSpecialists(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.catalogService.ListSpecialists(c.Request.Context(), principal.TenantID, includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateSpecialist handles specialist update
// PUT /api/v1/specialists/:id
func (h *CatalogHandler) UpdateSpecialist(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	result, err := h.catalogService.UpdateSpecialist(c.Request.Context(), principal.TenantID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", "At least one field must be provided for update"))
			return
		}
		if errors.Is(err, service.ErrSpecialistNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Specialist not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// DeleteSpecialist handles specialist deletion
// DELETE /api/v1/specialists/:id
func (h *CatalogHandler) DeleteSpecialist(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	if err := h.catalogService.DeleteSpecialist(c.Request.Context(), principal.TenantID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSpecialistNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Specialist not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Specialist deleted"}))
}

// GetHero handles retrieving the salon's hero section
// GET /api/v1/hero
func (h *CatalogHandler) GetHero(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.catalogService.GetHero(c.Request.Context(), principal.TenantID)
	if err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Hero section not set"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpsertHero handles creating or replacing the salon's hero section
// PUT /api/v1/hero
func (h *CatalogHandler) UpsertHero(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpsertHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.catalogService.UpsertHero(c.Request.Context(), principal.TenantID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
