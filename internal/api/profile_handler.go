package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the fitness questionnaire. Enum values outside the known sets are
// accepted and fall back to defaults at generation time.
type ProfileRequest struct {
	Age                 int      `json:"age" binding:"required,gt=0"`
	Gender              string   `json:"gender"`
	WeightLbs           float64  `json:"weight_lbs" binding:"required,gt=0"`
	HeightInches        float64  `json:"height_inches" binding:"gte=0"`
	FitnessGoal         string   `json:"fitness_goal"`
	ActivityLevel       string   `json:"activity_level"`
	WorkoutSchedule     int      `json:"workout_schedule" binding:"gte=0,lte=7"`
	PhysicalLimitations []string `json:"physical_limitations"`
	AvailableEquipment  []string `json:"available_equipment"`
}

func (r ProfileRequest) toDomain() domain.UserProfile {
	return domain.UserProfile{
		Age:                 r.Age,
		Gender:              domain.Gender(r.Gender),
		WeightLbs:           r.WeightLbs,
		HeightInches:        r.HeightInches,
		FitnessGoal:         r.FitnessGoal,
		ActivityLevel:       r.ActivityLevel,
		WorkoutSchedule:     r.WorkoutSchedule,
		PhysicalLimitations: r.PhysicalLimitations,
		AvailableEquipment:  r.AvailableEquipment,
	}
}

// GetProfile godoc
// @Summary Get the caller's questionnaire
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} gin.H "Profile not filled in yet"
// @Router /me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileIncomplete):
			abortWithError(c, http.StatusNotFound, "Profile has not been filled in yet")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Store the caller's questionnaire
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Questionnaire answers"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} gin.H "Invalid input"
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfile):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}
