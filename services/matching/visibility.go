// File: services/matching/visibility.go
package matching

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Redis set keys for the persisted visibility state.
const (
	viewedSetKey   = "matches:viewed"
	excludedSetKey = "matches:excluded"
)

type pairKey struct {
	propertyID string
	clientID   string
}

// VisibilityTracker records which (property, client) matches have been seen
// and which have been manually excluded. Both sets only ever grow: there is
// no un-view and deliberately no un-exclude operation.
//
// The in-memory maps are authoritative — writes are visible to readers
// immediately — and are mirrored to Redis sets asynchronously, best-effort.
// A Redis failure costs badge state on the next restart, nothing more, so it
// is logged and otherwise ignored.
type VisibilityTracker struct {
	mu       sync.RWMutex
	viewed   map[pairKey]struct{}
	excluded map[pairKey]struct{}

	exclusionVersion atomic.Uint64

	rdb    *redis.Client // nil means in-memory only
	logger *zap.Logger
}

// NewVisibilityTracker creates a tracker hydrated from the Redis sets. Pass a
// nil client for a purely in-memory tracker.
func NewVisibilityTracker(rdb *redis.Client, logger *zap.Logger) *VisibilityTracker {
	t := &VisibilityTracker{
		viewed:   make(map[pairKey]struct{}),
		excluded: make(map[pairKey]struct{}),
		rdb:      rdb,
		logger:   logger,
	}
	t.hydrate()
	return t
}

func (t *VisibilityTracker) hydrate() {
	if t.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	members, err := t.rdb.SMembers(ctx, viewedSetKey).Result()
	if err != nil {
		t.logger.Warn("failed to load viewed matches from redis", zap.Error(err))
	} else {
		for _, m := range members {
			if propertyID, clientID, ok := splitPairMember(m); ok {
				t.viewed[pairKey{propertyID, clientID}] = struct{}{}
			}
		}
	}

	members, err = t.rdb.SMembers(ctx, excludedSetKey).Result()
	if err != nil {
		t.logger.Warn("failed to load excluded matches from redis", zap.Error(err))
	} else {
		for _, m := range members {
			// Excluded members are stored client-first, mirroring the
			// direction the exclusion is made from.
			if clientID, propertyID, ok := splitPairMember(m); ok {
				t.excluded[pairKey{propertyID, clientID}] = struct{}{}
			}
		}
	}
}

// MarkViewed records that the match has been shown to the user. Idempotent.
func (t *VisibilityTracker) MarkViewed(propertyID, clientID string) {
	key := pairKey{propertyID, clientID}

	t.mu.Lock()
	if _, exists := t.viewed[key]; exists {
		t.mu.Unlock()
		return
	}
	t.viewed[key] = struct{}{}
	t.mu.Unlock()

	t.persist(viewedSetKey, propertyID+"|"+clientID)
}

// IsViewed reports whether the match has been marked viewed.
func (t *VisibilityTracker) IsViewed(propertyID, clientID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.viewed[pairKey{propertyID, clientID}]
	return ok
}

// Exclude permanently hides the match from ranked results. Idempotent.
func (t *VisibilityTracker) Exclude(clientID, propertyID string) {
	key := pairKey{propertyID, clientID}

	t.mu.Lock()
	if _, exists := t.excluded[key]; exists {
		t.mu.Unlock()
		return
	}
	t.excluded[key] = struct{}{}
	t.mu.Unlock()

	t.exclusionVersion.Add(1)
	t.persist(excludedSetKey, clientID+"|"+propertyID)
}

// IsExcluded reports whether the match has been excluded.
func (t *VisibilityTracker) IsExcluded(clientID, propertyID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.excluded[pairKey{propertyID, clientID}]
	return ok
}

// ExclusionVersion is bumped on every new exclusion; ranking caches key on
// it so stale lists are never served.
func (t *VisibilityTracker) ExclusionVersion() uint64 {
	return t.exclusionVersion.Load()
}

// persist mirrors a set insert to Redis in the background, fire-and-forget.
func (t *VisibilityTracker) persist(setKey, member string) {
	if t.rdb == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := t.rdb.SAdd(ctx, setKey, member).Err(); err != nil {
			t.logger.Warn("failed to persist match visibility",
				zap.String("set", setKey),
				zap.String("member", member),
				zap.Error(err))
		}
	}()
}

func splitPairMember(m string) (string, string, bool) {
	first, second, ok := strings.Cut(m, "|")
	if !ok || first == "" || second == "" {
		return "", "", false
	}
	return first, second, true
}
