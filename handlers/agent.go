package handlers

import (
	"net/http"

	"estia/models"
	"estia/services/agent"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler exposes agent account endpoints.
type AgentHandler struct {
	Service agent.AgentService
}

// NewAgentHandler creates an AgentHandler.
func NewAgentHandler(svc agent.AgentService) *AgentHandler {
	return &AgentHandler{Service: svc}
}

// RegisterAgentHandler handles POST /agents/register.
func (h *AgentHandler) RegisterAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload models.Agent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.Service.RegisterAgent(payload)
	if err != nil {
		logger.Warn("Agent registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateAgentHandler handles POST /agents/login.
func (h *AgentHandler) AuthenticateAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.Service.AuthenticateAgent(payload.Email, payload.Password)
	if err != nil {
		logger.Warn("Agent authentication failed", zap.String("email", payload.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAgentHandler handles GET /agents/me.
func (h *AgentHandler) GetAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	agt, err := h.Service.GetAgentByID(agentID)
	if err != nil {
		logger.Error("Agent not found", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agt)
}

// UpdateAgentHandler handles PUT /agents/me.
func (h *AgentHandler) UpdateAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload models.Agent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.ID = c.GetString("agentID")

	agt, err := h.Service.UpdateAgent(payload)
	if err != nil {
		logger.Error("Agent update failed", zap.String("id", payload.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agt)
}

// DeleteAgentHandler handles DELETE /agents/me.
func (h *AgentHandler) DeleteAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	if err := h.Service.DeleteAgent(agentID); err != nil {
		logger.Error("Agent delete failed", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted"})
}

// RevokeAuthTokenHandler handles DELETE /agents/token.
func (h *AgentHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	if err := h.Service.RevokeAuthToken(agentID); err != nil {
		logger.Error("Token revocation failed", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// UpdateAgentPasswordHandler handles PUT /agents/password.
// It expects a JSON payload with "currentPassword" and "newPassword".
func (h *AgentHandler) UpdateAgentPasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	agentID := c.GetString("agentID")
	if err := h.Service.UpdateAgentPassword(agentID, payload.CurrentPassword, payload.NewPassword); err != nil {
		logger.Warn("Password update failed", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// StartSubscriptionHandler handles POST /agents/subscribe.
func (h *AgentHandler) StartSubscriptionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	intent, err := h.Service.StartSubscription(agentID)
	if err != nil {
		logger.Error("Subscription start failed", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intent)
}

// GetSubscriptionHandler handles GET /agents/subscription.
func (h *AgentHandler) GetSubscriptionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	sub, err := h.Service.RefreshSubscription(agentID)
	if err != nil {
		logger.Error("Subscription refresh failed", zap.String("id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}
