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

// WaitlistHandler handles waitlist HTTP requests
type WaitlistHandler struct {
	waitlistService service.WaitlistService
}

// NewWaitlistHandler creates a new WaitlistHandler
func NewWaitlistHandler(waitlistService service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistService: waitlistService}
}

// Get handles retrieving one waitlist entry
// GET /api/v1/waitlist/:id
func (h *WaitlistHandler) Get(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.waitlistService.Get(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWaitlistEntryNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Waitlist entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles listing the salon's waitlist entries
// GET /api/v1/waitlist
func (h *WaitlistHandler) List(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var query dto.ListWaitlistQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.waitlistService.List(c.Request.Context(), principal.TenantID, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateStatus handles a single-entry status change
// PUT /api/v1/waitlist/:id/status
func (h *WaitlistHandler) UpdateStatus(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateWaitlistStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.waitlistService.UpdateStatus(c.Request.Context(), principal, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrWaitlistEntryNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Waitlist entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// BulkUpdateStatus handles a bulk status change
// PUT /api/v1/waitlist/status
func (h *WaitlistHandler) BulkUpdateStatus(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.BulkUpdateWaitlistStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.waitlistService.BulkUpdateStatus(c.Request.Context(), principal, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateNotes handles replacing an entry's administrative notes
// PUT /api/v1/waitlist/:id/notes
func (h *WaitlistHandler) UpdateNotes(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req dto.UpdateWaitlistNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.waitlistService.UpdateNotes(c.Request.Context(), principal.TenantID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrWaitlistEntryNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Waitlist entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Stats handles the per-status count summary
// GET /api/v1/waitlist/stats
func (h *WaitlistHandler) Stats(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	result, err := h.waitlistService.Stats(c.Request.Context(), principal.TenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
