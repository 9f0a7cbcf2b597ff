package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Response Structs ---

type GeneratePlanResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Plan    *domain.WeeklyPlan `json:"plan"`
}

type PlanResponse struct {
	ID        string            `json:"id"`
	WeekOf    string            `json:"weekOf"`
	WeekRange string            `json:"week_range,omitempty"`
	Plan      domain.WeeklyPlan `json:"plan"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func mapPlanToResponse(p *domain.WorkoutPlan, weekRange string) PlanResponse {
	return PlanResponse{
		ID:        p.ID.Hex(),
		WeekOf:    p.WeekOf,
		WeekRange: weekRange,
		Plan:      p.Plan,
		UpdatedAt: p.UpdatedAt,
	}
}

// planError maps workout service errors to HTTP statuses.
func planError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileIncomplete):
		abortWithError(c, http.StatusUnprocessableEntity, "Complete your profile (age and weight) before generating a plan")
	case errors.Is(err, service.ErrNoEligibleExercises):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrPlanNotFound), errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidWeek):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExportUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// GeneratePlan godoc
// @Summary Generate this week's workout plan
// @Description Builds a seven-day plan from the caller's profile and stores it for today's date.
// @Tags Workout Plans
// @Produce json
// @Security BearerAuth
// @Success 201 {object} GeneratePlanResponse
// @Failure 422 {object} gin.H "Profile incomplete or no eligible exercises"
// @Router /workout-plans [post]
func (h *WorkoutHandler) GeneratePlan(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	plan, err := h.workoutService.GeneratePlan(c.Request.Context(), userID)
	if err != nil {
		planError(c, err)
		return
	}
	c.JSON(http.StatusCreated, GeneratePlanResponse{
		Success: true,
		Message: "Workout plan generated successfully",
		Plan:    &plan.Plan,
	})
}

// GetCurrentPlan godoc
// @Summary Get the plan of the current week
// @Tags Workout Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlanResponse
// @Failure 404 {object} gin.H "No plan this week"
// @Router /workout-plans/current [get]
func (h *WorkoutHandler) GetCurrentPlan(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	cur, err := h.workoutService.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		planError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPlanToResponse(cur.Plan, cur.WeekRange))
}

// GetPlanByWeek godoc
// @Summary Get a stored plan by its date
// @Tags Workout Plans
// @Produce json
// @Security BearerAuth
// @Param weekOf path string true "Generation date (YYYY-MM-DD)"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} gin.H "Malformed date"
// @Failure 404 {object} gin.H "No plan for that date"
// @Router /workout-plans/{weekOf} [get]
func (h *WorkoutHandler) GetPlanByWeek(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	plan, err := h.workoutService.GetPlanByWeek(c.Request.Context(), userID, c.Param("weekOf"))
	if err != nil {
		planError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPlanToResponse(plan, ""))
}

// ExportPlan godoc
// @Summary Export a stored plan as a JSON download
// @Tags Workout Plans
// @Produce json
// @Security BearerAuth
// @Param weekOf path string true "Generation date (YYYY-MM-DD)"
// @Success 201 {object} ExportResponse
// @Failure 404 {object} gin.H "No plan for that date"
// @Failure 503 {object} gin.H "Export storage not configured"
// @Router /workout-plans/{weekOf}/export [post]
func (h *WorkoutHandler) ExportPlan(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	export, err := h.workoutService.ExportPlan(c.Request.Context(), userID, c.Param("weekOf"))
	if err != nil {
		planError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ExportResponse{Key: export.Key, URL: export.URL, ExpiresAt: export.ExpiresAt})
}
