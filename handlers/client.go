package handlers

import (
	"net/http"

	"estia/models"
	"estia/services/client"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes client CRUD endpoints.
type ClientHandler struct {
	Service client.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

// CreateClientHandler handles POST /clients.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload models.Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.AgentID = c.GetString("agentID")

	created, err := h.Service.CreateClient(payload)
	if err != nil {
		logger.Warn("Client creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListClientsHandler handles GET /clients.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	clients, err := h.Service.GetClientsByAgent(agentID)
	if err != nil {
		logger.Error("Client list failed", zap.String("agentID", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientHandler handles GET /clients/:id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	cl, err := h.Service.GetClientByID(id)
	if err != nil {
		logger.Error("Client not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if cl.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Client belongs to another agent"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// UpdateClientHandler handles PUT /clients/:id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetClientByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Client belongs to another agent"})
		return
	}

	var payload models.Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.ID = id

	updated, err := h.Service.UpdateClient(payload)
	if err != nil {
		logger.Error("Client update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClientHandler handles DELETE /clients/:id.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetClientByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Client belongs to another agent"})
		return
	}

	if err := h.Service.DeleteClient(id); err != nil {
		logger.Error("Client delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
