package api

import (
	"context"
	"errors"
	"net/http"

	"alcyxob/fitplan/internal/scheduler"
	"alcyxob/fitplan/internal/service"

	"github.com/gin-gonic/gin"
)

// Regenerator runs the batch plan regeneration on demand.
type Regenerator interface {
	RunNow(ctx context.Context) (service.RegenerationResult, error)
}

type AdminHandler struct {
	regen Regenerator
}

func NewAdminHandler(regen Regenerator) *AdminHandler {
	return &AdminHandler{regen: regen}
}

// RegeneratePlans godoc
// @Summary Regenerate plans for every user with a complete profile
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RegenerationResult
// @Failure 403 {object} gin.H "Not an admin"
// @Failure 409 {object} gin.H "A regeneration is already running"
// @Failure 503 {object} gin.H "Server is shutting down"
// @Router /admin/workout-plans/regenerate [post]
func (h *AdminHandler) RegeneratePlans(c *gin.Context) {
	res, err := h.regen.RunNow(c.Request.Context())
	if err != nil {
		if errors.Is(err, scheduler.ErrAlreadyRunning) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, scheduler.ErrStopped) {
			abortWithError(c, http.StatusServiceUnavailable, "Server is shutting down")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Regeneration failed")
		return
	}
	c.JSON(http.StatusOK, res)
}
