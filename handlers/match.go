package handlers

import (
	"net/http"

	"estia/services/client"
	"estia/services/matching"
	"estia/services/property"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchHandler exposes the ranked match lists and visibility bookkeeping.
type MatchHandler struct {
	Matches    matching.MatchService
	Clients    client.ClientService
	Properties property.PropertyService
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(matches matching.MatchService, clients client.ClientService, properties property.PropertyService) *MatchHandler {
	return &MatchHandler{Matches: matches, Clients: clients, Properties: properties}
}

// ClientMatchesHandler handles GET /clients/:id/matches.
func (h *MatchHandler) ClientMatchesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	clientID := c.Param("id")
	cl, err := h.Clients.GetClientByID(clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if cl.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Client belongs to another agent"})
		return
	}

	matches, err := h.Matches.MatchesForClient(clientID)
	if err != nil {
		logger.Error("Match computation failed", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// PropertyBuyersHandler handles GET /properties/:id/buyers.
func (h *MatchHandler) PropertyBuyersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	propertyID := c.Param("id")
	p, err := h.Properties.GetPropertyByID(propertyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if p.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}

	buyers, err := h.Matches.BuyersForProperty(propertyID)
	if err != nil {
		logger.Error("Buyer match computation failed", zap.String("propertyID", propertyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buyers)
}

// verifyMatchOwnership loads both sides of the pair and checks they belong to
// the calling agent. Writes the error response itself and reports whether the
// caller may proceed.
func (h *MatchHandler) verifyMatchOwnership(c *gin.Context, clientID, propertyID string) bool {
	cl, err := h.Clients.GetClientByID(clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return false
	}
	p, err := h.Properties.GetPropertyByID(propertyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return false
	}
	agentID := c.GetString("agentID")
	if cl.AgentID != agentID || p.AgentID != agentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Match belongs to another agent"})
		return false
	}
	return true
}

// MarkViewedHandler handles POST /matches/viewed.
func (h *MatchHandler) MarkViewedHandler(c *gin.Context) {
	var payload struct {
		PropertyID string `json:"propertyId"`
		ClientID   string `json:"clientId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PropertyID == "" || payload.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "propertyId and clientId are required"})
		return
	}
	if !h.verifyMatchOwnership(c, payload.ClientID, payload.PropertyID) {
		return
	}

	h.Matches.MarkViewed(payload.PropertyID, payload.ClientID)
	c.JSON(http.StatusOK, gin.H{"message": "Match marked viewed"})
}

// ExcludeMatchHandler handles POST /matches/exclude. There is no inverse
// endpoint: exclusions are permanent, so ownership is checked before the
// tracker is touched.
func (h *MatchHandler) ExcludeMatchHandler(c *gin.Context) {
	var payload struct {
		ClientID   string `json:"clientId"`
		PropertyID string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PropertyID == "" || payload.ClientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientId and propertyId are required"})
		return
	}
	if !h.verifyMatchOwnership(c, payload.ClientID, payload.PropertyID) {
		return
	}

	h.Matches.Exclude(payload.ClientID, payload.PropertyID)
	c.JSON(http.StatusOK, gin.H{"message": "Match excluded"})
}
