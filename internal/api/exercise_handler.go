package api

import (
	"errors"
	"net/http"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	catalogService service.CatalogService
}

func NewExerciseHandler(catalogService service.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService}
}

// --- DTOs ---

// ExerciseResponse is the catalog record as exposed over the API.
type ExerciseResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Level            string   `json:"level"`
	Equipment        string   `json:"equipment"`
	Category         string   `json:"category"`
	Mechanic         string   `json:"mechanic,omitempty"`
	Force            string   `json:"force,omitempty"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Images           []string `json:"images"`
}

func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:               ex.ID,
		Name:             ex.Name,
		Level:            string(ex.Level),
		Equipment:        ex.Equipment,
		Category:         ex.Category,
		Mechanic:         ex.Mechanic,
		Force:            ex.Force,
		PrimaryMuscles:   orEmpty(ex.PrimaryMuscles),
		SecondaryMuscles: orEmpty(ex.SecondaryMuscles),
		Instructions:     orEmpty(ex.Instructions),
		Images:           orEmpty(ex.Images),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ListExercises godoc
// @Summary Browse the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param level query string false "beginner, intermediate or advanced"
// @Param equipment query string false "Equipment tag, e.g. dumbbell"
// @Param category query string false "strength, cardio, plyometrics, stretching..."
// @Success 200 {array} ExerciseResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context(), service.ExerciseFilter{
		Level:     c.Query("level"),
		Equipment: c.Query("equipment"),
		Category:  c.Query("category"),
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}
	resp := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		resp[i] = MapExerciseToResponse(&exercises[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetExercise godoc
// @Summary Get one catalog exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, err := h.catalogService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}
