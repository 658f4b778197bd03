package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/store"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency and serves both workout
// and diet plan routes.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request Structs ---

type CreateWorkoutPlanRequest struct {
	ClientID string              `json:"clientId" binding:"required"`
	Name     string              `json:"name" binding:"required"`
	Month    int                 `json:"month" binding:"required,min=1,max=12"`
	Year     int                 `json:"year" binding:"required,min=2024,max=2030"`
	Days     []domain.DayWorkout `json:"days"`
}

type UpdateWorkoutPlanRequest struct {
	Name  *string             `json:"name" binding:"omitempty,min=1"`
	Month *int                `json:"month" binding:"omitempty,min=1,max=12"`
	Year  *int                `json:"year" binding:"omitempty,min=2024,max=2030"`
	Days  []domain.DayWorkout `json:"days"`
}

type CreateDietPlanRequest struct {
	ClientID       string           `json:"clientId" binding:"required"`
	Name           string           `json:"name" binding:"required"`
	Month          int              `json:"month" binding:"required,min=1,max=12"`
	Year           int              `json:"year" binding:"required,min=2024,max=2030"`
	TargetCalories int              `json:"targetCalories" binding:"required,min=1000,max=5000"`
	Days           []domain.DayDiet `json:"days"`
}

type UpdateDietPlanRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Month          *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year           *int             `json:"year" binding:"omitempty,min=2024,max=2030"`
	TargetCalories *int             `json:"targetCalories" binding:"omitempty,min=1000,max=5000"`
	Days           []domain.DayDiet `json:"days"`
}

// CopyDayRequest names a source day and the days to stamp it onto.
type CopyDayRequest struct {
	SourceDay  int   `json:"sourceDay" binding:"required,min=1,max=31"`
	TargetDays []int `json:"targetDays" binding:"required,min=1,dive,min=1,max=31"`
}

// --- Workout plan handlers ---

func (h *PlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetWorkoutPlan(c *gin.Context) {
	p, err := h.planService.GetWorkoutPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout plan")
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.CreateWorkoutPlan(c.Request.Context(), &domain.WorkoutPlan{
		ClientID: req.ClientID,
		Name:     req.Name,
		Month:    req.Month,
		Year:     req.Year,
		Days:     req.Days,
	})
	if err != nil {
		h.writePlanError(c, err, "Failed to create workout plan")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	var req UpdateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.UpdateWorkoutPlan(c.Request.Context(), c.Param("id"), store.WorkoutPlanUpdate{
		Name:  req.Name,
		Month: req.Month,
		Year:  req.Year,
		Days:  req.Days,
	})
	if err != nil {
		h.writePlanError(c, err, "Failed to update workout plan")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	if err := h.planService.DeleteWorkoutPlan(c.Request.Context(), c.Param("id")); err != nil {
		h.writePlanError(c, err, "Failed to delete workout plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// CopyWorkoutDay duplicates one day of the plan onto other days.
func (h *PlanHandler) CopyWorkoutDay(c *gin.Context) {
	var req CopyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.CopyWorkoutDay(c.Request.Context(), c.Param("id"), req.SourceDay, req.TargetDays)
	if err != nil {
		h.writePlanError(c, err, "Failed to copy workout day")
		return
	}
	c.JSON(http.StatusOK, p)
}

// --- Diet plan handlers ---

func (h *PlanHandler) ListDietPlans(c *gin.Context) {
	plans, err := h.planService.ListDietPlans(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch diet plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetDietPlan(c *gin.Context) {
	p, err := h.planService.GetDietPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Diet plan not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch diet plan")
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PlanHandler) CreateDietPlan(c *gin.Context) {
	var req CreateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.CreateDietPlan(c.Request.Context(), &domain.DietPlan{
		ClientID:       req.ClientID,
		Name:           req.Name,
		Month:          req.Month,
		Year:           req.Year,
		TargetCalories: req.TargetCalories,
		Days:           req.Days,
	})
	if err != nil {
		h.writePlanError(c, err, "Failed to create diet plan")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PlanHandler) UpdateDietPlan(c *gin.Context) {
	var req UpdateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.UpdateDietPlan(c.Request.Context(), c.Param("id"), store.DietPlanUpdate{
		Name:           req.Name,
		Month:          req.Month,
		Year:           req.Year,
		TargetCalories: req.TargetCalories,
		Days:           req.Days,
	})
	if err != nil {
		h.writePlanError(c, err, "Failed to update diet plan")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PlanHandler) DeleteDietPlan(c *gin.Context) {
	if err := h.planService.DeleteDietPlan(c.Request.Context(), c.Param("id")); err != nil {
		h.writePlanError(c, err, "Failed to delete diet plan")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) CopyDietDay(c *gin.Context) {
	var req CopyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.CopyDietDay(c.Request.Context(), c.Param("id"), req.SourceDay, req.TargetDays)
	if err != nil {
		h.writePlanError(c, err, "Failed to copy diet day")
		return
	}
	c.JSON(http.StatusOK, p)
}

// writePlanError maps plan service errors onto HTTP statuses.
func (h *PlanHandler) writePlanError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, service.ErrClientNotFound):
		abortWithError(c, http.StatusBadRequest, "Client not found")
	case errors.Is(err, service.ErrInvalidPlan):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
