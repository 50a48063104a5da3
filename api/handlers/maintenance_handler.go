package handlers

import (
	"net/http"
	"time"

	"example.com/fleetdesk/internal/models"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MaintenanceHandler handles maintenance ticket requests
type MaintenanceHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewMaintenanceHandler creates a new MaintenanceHandler instance
func NewMaintenanceHandler(svc service.Service, log *logrus.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: svc,
		log:     log,
	}
}

// ListMaintenances handles the maintenance list view
func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	records, err := h.service.ListMaintenances(c, c.Query("q"), c.Query("status"), c.Query("type"))
	if err != nil {
		h.log.WithError(err).Error("Failed to list maintenances")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list maintenances",
		})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateMaintenance handles ticket creation
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var record models.Maintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance format",
		})
		return
	}
	if err := checkMaintenance(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if record.Status == "" {
		record.Status = models.MaintenancePending
	}
	if record.Priority == "" {
		record.Priority = models.PriorityMedium
	}

	created, err := h.service.CreateMaintenance(c, record)
	if err != nil {
		h.log.WithError(err).Error("Failed to create maintenance")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create maintenance",
		})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMaintenance handles ticket updates
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance ID",
		})
		return
	}

	var record models.Maintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance format",
		})
		return
	}
	record.ID = id

	updated, err := h.service.UpdateMaintenance(c, record)
	if err != nil {
		h.log.WithError(err).Error("Failed to update maintenance")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to update maintenance",
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMaintenance handles ticket deletion after explicit confirmation
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance ID",
		})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Deletion requires confirm=true",
		})
		return
	}

	if err := h.service.DeleteMaintenance(c, id); err != nil {
		h.log.WithError(err).Error("Failed to delete maintenance")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to delete maintenance",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     id,
	})
}

// checkMaintenance enforces the dialog's required-field policy, including
// the ISO-8601 service date format
func checkMaintenance(m models.Maintenance) error {
	switch {
	case m.VehicleID <= 0:
		return errRequired("vehicle_id")
	case m.ServiceDate == "":
		return errRequired("service_date")
	case m.Description == "":
		return errRequired("description")
	case m.Type == "":
		return errRequired("type")
	}
	if _, err := time.Parse("2006-01-02", m.ServiceDate); err != nil {
		return errFormat("service_date", "2006-01-02")
	}
	return nil
}

type fieldError struct {
	message string
}

func (e fieldError) Error() string { return e.message }

func errRequired(field string) error {
	return fieldError{message: field + " is required"}
}

func errFormat(field, layout string) error {
	return fieldError{message: field + " must use the " + layout + " format"}
}
