package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves injury logs, measurement logs, trainer notes and
// progress check-ins.
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// --- Request Structs ---

type CreateInjuryRequest struct {
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      domain.InjuryStatus `json:"status" binding:"omitempty,oneof=Active Recovering Recovered"`
}

type UpdateInjuryRequest struct {
	Date        *string              `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Title       *string              `json:"title" binding:"omitempty,min=1"`
	Description *string              `json:"description"`
	Status      *domain.InjuryStatus `json:"status" binding:"omitempty,oneof=Active Recovering Recovered"`
}

type CreateMeasurementRequest struct {
	Date   string   `json:"date" binding:"required,datetime=2006-01-02"`
	Weight *float64 `json:"weight" binding:"omitempty,min=20,max=300"`
	Height *float64 `json:"height" binding:"omitempty,min=100,max=250"`
	Chest  *float64 `json:"chest" binding:"omitempty,min=0"`
	Waist  *float64 `json:"waist" binding:"omitempty,min=0"`
	Hips   *float64 `json:"hips" binding:"omitempty,min=0"`
	Arms   *float64 `json:"arms" binding:"omitempty,min=0"`
	Thighs *float64 `json:"thighs" binding:"omitempty,min=0"`
	Notes  string   `json:"notes"`
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateProgressRequest struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight" binding:"required,min=20,max=300"`
	Notes  string    `json:"notes"`
}

// --- Injury handlers ---

func (h *HealthHandler) CreateInjury(c *gin.Context) {
	var req CreateInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	injury, err := h.healthService.LogInjury(c.Request.Context(), &domain.InjuryLog{
		ClientID:    c.Param("id"),
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.writeHealthError(c, err, "Failed to log injury")
		return
	}
	c.JSON(http.StatusCreated, injury)
}

func (h *HealthHandler) ListInjuries(c *gin.Context) {
	injuries, err := h.healthService.ListInjuries(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch injuries")
		return
	}
	c.JSON(http.StatusOK, injuries)
}

func (h *HealthHandler) UpdateInjury(c *gin.Context) {
	var req UpdateInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	injury, err := h.healthService.UpdateInjury(c.Request.Context(), c.Param("id"), store.InjuryUpdate{
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.writeHealthError(c, err, "Failed to update injury")
		return
	}
	c.JSON(http.StatusOK, injury)
}

func (h *HealthHandler) DeleteInjury(c *gin.Context) {
	if err := h.healthService.DeleteInjury(c.Request.Context(), c.Param("id")); err != nil {
		h.writeHealthError(c, err, "Failed to delete injury")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Measurement handlers ---

func (h *HealthHandler) CreateMeasurement(c *gin.Context) {
	var req CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	m, err := h.healthService.LogMeasurement(c.Request.Context(), &domain.MeasurementLog{
		ClientID: c.Param("id"),
		Date:     req.Date,
		Weight:   req.Weight,
		Height:   req.Height,
		Chest:    req.Chest,
		Waist:    req.Waist,
		Hips:     req.Hips,
		Arms:     req.Arms,
		Thighs:   req.Thighs,
		Notes:    req.Notes,
	})
	if err != nil {
		h.writeHealthError(c, err, "Failed to log measurement")
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *HealthHandler) ListMeasurements(c *gin.Context) {
	logs, err := h.healthService.ListMeasurements(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch measurements")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *HealthHandler) DeleteMeasurement(c *gin.Context) {
	if err := h.healthService.DeleteMeasurement(c.Request.Context(), c.Param("id")); err != nil {
		h.writeHealthError(c, err, "Failed to delete measurement")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Note handlers ---

func (h *HealthHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	note, err := h.healthService.AddNote(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		h.writeHealthError(c, err, "Failed to add note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *HealthHandler) ListNotes(c *gin.Context) {
	notes, err := h.healthService.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *HealthHandler) DeleteNote(c *gin.Context) {
	if err := h.healthService.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		h.writeHealthError(c, err, "Failed to delete note")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Progress handlers ---

func (h *HealthHandler) CreateProgress(c *gin.Context) {
	var req CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.healthService.LogProgress(c.Request.Context(), &domain.Progress{
		ClientID: c.Param("id"),
		Date:     req.Date,
		Weight:   req.Weight,
		Notes:    req.Notes,
	})
	if err != nil {
		h.writeHealthError(c, err, "Failed to log progress")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *HealthHandler) ListProgress(c *gin.Context) {
	entries, err := h.healthService.ListProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *HealthHandler) writeHealthError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		abortWithError(c, http.StatusBadRequest, "Client not found")
	case errors.Is(err, service.ErrRecordNotFound):
		abortWithError(c, http.StatusNotFound, "Record not found")
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
