package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Summary returns the global task counts and the upcoming tasks
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryDTO(*summary))
}

// UserStats returns the task counts of one user
func (h *AnalyticsHandler) UserStats(c *gin.Context) {
	stats, err := h.analyticsService.UserStatsByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserStatsDTO(*stats))
}
