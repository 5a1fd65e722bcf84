package middleware

import (
	"net/http"
	"strings"

	agentRepo "estia/database/repository/agent"
	"estia/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAgentMiddleware authenticates requests with a bearer token. The
// token's hash must match the one stored for the agent; revoking a token
// clears the stored hash and kills every outstanding copy at once. The auth
// cache short-circuits the Mongo lookup for recently seen tokens.
func JWTAuthAgentMiddleware(repo agentRepo.AgentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		agentID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || agentID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenHash := utils.HashToken(tokenString)

		// Fast path: cached token hash.
		if cachedID := utils.LookupAuthToken(tokenHash); cachedID == agentID {
			c.Set("agentID", agentID)
			c.Next()
			return
		}

		agent, err := repo.GetByIDWithProjection(agentID, nil)
		if err != nil || agent.TokenHash == "" || agent.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		utils.CacheAuthToken(tokenHash, agentID)

		c.Set("agentID", agentID)
		c.Next()
	}
}
