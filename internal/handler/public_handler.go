package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/service"
	"github.com/elitebooker/elitebooker-backend/pkg/response"
)

// PublicHandler handles the unauthenticated salon site endpoints
type PublicHandler struct {
	publicService   service.PublicService
	waitlistService service.WaitlistService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(publicService service.PublicService, waitlistService service.WaitlistService) *PublicHandler {
	return &PublicHandler{
		publicService:   publicService,
		waitlistService: waitlistService,
	}
}

// GetSite returns the public salon page payload
// GET /api/v1/public/salons/:slug
func (h *PublicHandler) GetSite(c *gin.Context) {
	result, err := h.publicService.GetSite(c.Request.Context(), c.Param("slug"))
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

// JoinWaitlist adds a client to the salon's waitlist. The salon comes from
// the slug in the URL; nothing in the payload can point elsewhere.
// POST /api/v1/public/salons/:slug/waitlist
func (h *PublicHandler) JoinWaitlist(c *gin.Context) {
	tenantID, err := h.publicService.ResolveSalonID(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrSalonNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Salon not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	var req dto.CreateWaitlistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.waitlistService.Join(c.Request.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Unknown service for this salon"))
			return
		}
		if errors.Is(err, service.ErrInvalidDesiredDate) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid desired date"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
