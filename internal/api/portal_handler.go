package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the token-authenticated, read-only client portal.
type PortalHandler struct {
	portalService     service.PortalService
	completionService service.CompletionService
	// now supplies the reference clock; swapped out in tests.
	now func() time.Time
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(portalService service.PortalService, completionService service.CompletionService) *PortalHandler {
	return &PortalHandler{
		portalService:     portalService,
		completionService: completionService,
		now:               time.Now,
	}
}

// ToggleCompletionRequest marks one plan item done or not done for a day.
// Completed has to be a pointer: "false" is a meaningful value, not an
// absent field.
type ToggleCompletionRequest struct {
	PlanID    string          `json:"planId" binding:"required"`
	Type      domain.PlanType `json:"type" binding:"required,oneof=workout diet"`
	Date      string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ItemID    string          `json:"itemId" binding:"required"`
	Completed *bool           `json:"completed" binding:"required"`
}

// GetPortal resolves a portal token into the full read-only snapshot. The
// optional date query narrows the plans to a single day.
func (h *PortalHandler) GetPortal(c *gin.Context) {
	snapshot, err := h.portalService.Resolve(c.Request.Context(), c.Param("token"), c.Query("date"), h.now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPortalNotFound):
			abortWithError(c, http.StatusNotFound, "Portal not found")
		case errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve portal")
		}
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleCompletion lets a portal visitor check items off their own plans.
// The client identity comes from the token in the path, never the body.
func (h *PortalHandler) ToggleCompletion(c *gin.Context) {
	var req ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	completion, err := h.portalService.ToggleCompletion(c.Request.Context(), c.Param("token"), &domain.ItemCompletion{
		PlanID:    req.PlanID,
		Type:      req.Type,
		Date:      req.Date,
		ItemID:    req.ItemID,
		Completed: *req.Completed,
	}, h.now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPortalNotFound):
			abortWithError(c, http.StatusNotFound, "Portal not found")
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusBadRequest, "Plan not found")
		case errors.Is(err, service.ErrInvalidCompletion):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record completion")
		}
		return
	}
	c.JSON(http.StatusOK, completion)
}

// ListCompletions returns a client's completions for one day, for the
// trainer dashboard. An empty date means today.
func (h *PortalHandler) ListCompletions(c *gin.Context) {
	completions, err := h.completionService.ListForDate(c.Request.Context(), c.Param("id"), c.Query("date"), h.now())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch completions")
		return
	}
	c.JSON(http.StatusOK, completions)
}
