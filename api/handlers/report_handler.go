package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReportHandler serves the fixed report list
type ReportHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(svc service.Service, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		service: svc,
		log:     log,
	}
}

// ListReports handles the report list request. The list is fixed: view and
// download links point straight at the document server.
func (h *ReportHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Reports())
}
