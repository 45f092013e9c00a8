package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/service"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/pkg/response"
)

// TrajectoryHandler handles HTTP requests for the stored trajectory
type TrajectoryHandler struct {
	trajectoryService *service.TrajectoryService
}

// NewTrajectoryHandler creates a new trajectory handler
func NewTrajectoryHandler(trajectoryService *service.TrajectoryService) *TrajectoryHandler {
	return &TrajectoryHandler{
		trajectoryService: trajectoryService,
	}
}

// GetPoints handles GET /api/v1/trajectory/points
func (h *TrajectoryHandler) GetPoints(c *gin.Context) {
	var filter models.PointFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.trajectoryService.GetPoints(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetStats handles GET /api/v1/trajectory/stats
func (h *TrajectoryHandler) GetStats(c *gin.Context) {
	stats, err := h.trajectoryService.GetStats()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, stats)
}
