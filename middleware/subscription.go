package middleware

import (
	"net/http"

	agentRepo "estia/database/repository/agent"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RequireActiveSubscription gates match endpoints on an active or trialing
// subscription. CRUD endpoints stay open so lapsed accounts keep their data.
func RequireActiveSubscription(repo agentRepo.AgentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.GetString("agentID")
		if agentID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		agent, err := repo.GetByIDWithProjection(agentID, bson.M{"subscription": 1})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if !agent.HasActiveSubscription() {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "An active subscription is required for match features",
			})
			return
		}
		c.Next()
	}
}
