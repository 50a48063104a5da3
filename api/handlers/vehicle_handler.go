package handlers

import (
	"io"
	"net/http"
	"strconv"

	"example.com/fleetdesk/internal/models"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VehicleHandler handles vehicle inventory requests
type VehicleHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewVehicleHandler creates a new VehicleHandler instance
func NewVehicleHandler(svc service.Service, log *logrus.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: svc,
		log:     log,
	}
}

// ListVehicles handles the vehicle list view. The q and status query params
// filter the cached collection client-side.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c, c.Query("q"), c.Query("status"))
	if err != nil {
		h.log.WithError(err).Error("Failed to list vehicles")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list vehicles",
		})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle handles vehicle creation
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle format",
		})
		return
	}
	if vehicle.Plate == "" || vehicle.BrandID <= 0 || vehicle.ModelID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "plate, brand_id and model_id are required",
		})
		return
	}

	created, err := h.service.CreateVehicle(c, vehicle)
	if err != nil {
		h.log.WithError(err).Error("Failed to create vehicle")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create vehicle",
		})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVehicle handles vehicle updates
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID",
		})
		return
	}

	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle format",
		})
		return
	}
	vehicle.ID = id

	updated, err := h.service.UpdateVehicle(c, vehicle)
	if err != nil {
		h.log.WithError(err).Error("Failed to update vehicle")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to update vehicle",
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVehicle handles vehicle deletion. The confirm query param carries
// the explicit user confirmation the UI collects before the call fires.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID",
		})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Deletion requires confirm=true",
		})
		return
	}

	if err := h.service.DeleteVehicle(c, id); err != nil {
		h.log.WithError(err).Error("Failed to delete vehicle")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to delete vehicle",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     id,
	})
}

// UploadImage handles a single multipart image upload for a vehicle
func (h *VehicleHandler) UploadImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID",
		})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image file is required",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read image",
		})
		return
	}

	url, err := h.service.UploadVehicleImage(c, id, header.Filename, content)
	if err != nil {
		h.log.WithError(err).Error("Failed to upload vehicle image")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to upload vehicle image",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url": url,
	})
}

// ListBrands handles the brand catalog lookup
func (h *VehicleHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.ListBrands(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to list brands")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list brands",
		})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// ListModels handles the model catalog lookup for one brand
func (h *VehicleHandler) ListModels(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid brand ID",
		})
		return
	}

	mods, err := h.service.ListModels(c, brandID)
	if err != nil {
		h.log.WithError(err).Error("Failed to list models")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list models",
		})
		return
	}
	c.JSON(http.StatusOK, mods)
}

// parseID reads the numeric id path parameter
func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
