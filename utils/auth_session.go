// File: utils/auth_session.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const AuthTokenPrefix = "authToken:"

// Cached token entries expire on their own; the Mongo tokenHash field
// remains the source of truth on a cache miss.
const authTokenTTL = 24 * time.Hour

// CacheAuthToken stores a tokenHash -> agentID mapping in the auth cache.
// Best-effort: a failed write only costs a DB lookup later.
func CacheAuthToken(tokenHash, agentID string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, AuthTokenPrefix+tokenHash, agentID, authTokenTTL).Err(); err != nil {
		GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}
}

// LookupAuthToken resolves a tokenHash to an agentID from the auth cache.
// Returns an empty string on a miss.
func LookupAuthToken(tokenHash string) string {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	agentID, err := client.Get(ctx, AuthTokenPrefix+tokenHash).Result()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Warn("Failed to look up auth token", zap.Error(err))
		}
		return ""
	}
	return agentID
}

// DropAuthToken removes a cached token mapping (used on revocation).
func DropAuthToken(tokenHash string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, AuthTokenPrefix+tokenHash).Err(); err != nil {
		GetLogger().Warn("Failed to drop auth token", zap.Error(err))
	}
}
