package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardHandler handles the aggregated dashboard view
type DashboardHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(svc service.Service, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		log:     log,
	}
}

// GetSummary handles the dashboard summary request
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Dashboard(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to build dashboard summary")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to build dashboard summary",
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}
