package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/backend"
	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DeliveryHandler drives the six-step delivery/inspection wizard
type DeliveryHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler instance
func NewDeliveryHandler(svc service.Service, log *logrus.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: svc,
		log:     log,
	}
}

// StartSession opens a fresh wizard session
func (h *DeliveryHandler) StartSession(c *gin.Context) {
	session, err := h.service.StartDelivery(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to start delivery session")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start delivery session",
		})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the accumulated wizard state
func (h *DeliveryHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetDelivery(c, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitGeneral handles the step 1 submission
func (h *DeliveryHandler) SubmitGeneral(c *gin.Context) {
	var payload delivery.GeneralInfo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.SubmitGeneral(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitExterior handles the step 2 submission
func (h *DeliveryHandler) SubmitExterior(c *gin.Context) {
	var payload delivery.Exterior
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.SubmitExterior(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitTires handles the step 3 submission
func (h *DeliveryHandler) SubmitTires(c *gin.Context) {
	var payload delivery.Tires
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.SubmitTires(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitFluids handles the step 4 submission
func (h *DeliveryHandler) SubmitFluids(c *gin.Context) {
	var payload delivery.Fluids
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.SubmitFluids(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitEquipment handles the step 5 submission
func (h *DeliveryHandler) SubmitEquipment(c *gin.Context) {
	var payload delivery.Equipment
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.SubmitEquipment(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back moves one step backward without losing state
func (h *DeliveryHandler) Back(c *gin.Context) {
	session, err := h.service.DeliveryBack(c, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Finalize handles the step 6 submission and case closure
func (h *DeliveryHandler) Finalize(c *gin.Context) {
	var payload delivery.Signatures
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step payload",
		})
		return
	}
	session, err := h.service.FinalizeDelivery(c, c.Param("id"), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Reset clears a finalized session back to step 1
func (h *DeliveryHandler) Reset(c *gin.Context) {
	session, err := h.service.ResetDelivery(c, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// respondError maps wizard errors onto the dashboard's error taxonomy. The
// kind field lets the UI render required-field and backend validation
// failures differently from generic API failures, and "missing_case" flags
// a step submitted before the case existed.
func (h *DeliveryHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
			"kind":  "not_found",
		})
	case errors.Is(err, delivery.ErrNoCase):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"kind":  "missing_case",
		})
	case errors.Is(err, delivery.ErrWrongStep), errors.Is(err, delivery.ErrNotFinalized):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"kind":  "wrong_step",
		})
	case delivery.IsValidation(err), backend.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"kind":  "validation",
		})
	default:
		h.log.WithError(err).Error("Delivery wizard operation failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
			"kind":  "backend",
		})
	}
}
