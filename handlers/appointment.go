package handlers

import (
	"net/http"

	"estia/models"
	"estia/services/appointment"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment CRUD endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler handles POST /appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload models.Appointment
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.AgentID = c.GetString("agentID")

	created, err := h.Service.CreateAppointment(payload)
	if err != nil {
		logger.Warn("Appointment creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAppointmentsHandler handles GET /appointments. With ?upcoming=true it
// returns only appointments from now onward.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")

	var (
		appointments []models.Appointment
		err          error
	)
	if c.Query("upcoming") == "true" {
		appointments, err = h.Service.GetUpcomingByAgent(agentID)
	} else {
		appointments, err = h.Service.GetAppointmentsByAgent(agentID)
	}
	if err != nil {
		logger.Error("Appointment list failed", zap.String("agentID", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentHandler handles GET /appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Service.GetAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if appt.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another agent"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentHandler handles PUT /appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another agent"})
		return
	}

	var payload models.Appointment
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.ID = id

	updated, err := h.Service.UpdateAppointment(payload)
	if err != nil {
		logger.Error("Appointment update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAppointmentHandler handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Appointment belongs to another agent"})
		return
	}

	if err := h.Service.DeleteAppointment(id); err != nil {
		logger.Error("Appointment delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
