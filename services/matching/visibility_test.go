package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMemoryTracker() *VisibilityTracker {
	return NewVisibilityTracker(nil, zap.NewNop())
}

func TestMarkViewed(t *testing.T) {
	tracker := newMemoryTracker()

	assert.False(t, tracker.IsViewed("p1", "c1"))
	tracker.MarkViewed("p1", "c1")
	assert.True(t, tracker.IsViewed("p1", "c1"))

	// Other pairs are unaffected.
	assert.False(t, tracker.IsViewed("p1", "c2"))
	assert.False(t, tracker.IsViewed("p2", "c1"))

	// Idempotent.
	tracker.MarkViewed("p1", "c1")
	assert.True(t, tracker.IsViewed("p1", "c1"))
}

func TestExclude(t *testing.T) {
	tracker := newMemoryTracker()

	assert.False(t, tracker.IsExcluded("c1", "p1"))
	tracker.Exclude("c1", "p1")
	assert.True(t, tracker.IsExcluded("c1", "p1"))
	assert.False(t, tracker.IsExcluded("c2", "p1"))

	// Excluding does not mark the pair viewed.
	assert.False(t, tracker.IsViewed("p1", "c1"))
}

func TestExclusionVersionBumpsOncePerPair(t *testing.T) {
	tracker := newMemoryTracker()
	assert.Equal(t, uint64(0), tracker.ExclusionVersion())

	tracker.Exclude("c1", "p1")
	assert.Equal(t, uint64(1), tracker.ExclusionVersion())

	// Repeat exclusions do not invalidate caches.
	tracker.Exclude("c1", "p1")
	assert.Equal(t, uint64(1), tracker.ExclusionVersion())

	tracker.Exclude("c1", "p2")
	assert.Equal(t, uint64(2), tracker.ExclusionVersion())
}

func TestSplitPairMember(t *testing.T) {
	first, second, ok := splitPairMember("p1|c1")
	assert.True(t, ok)
	assert.Equal(t, "p1", first)
	assert.Equal(t, "c1", second)

	for _, malformed := range []string{"", "p1", "|c1", "p1|"} {
		_, _, ok := splitPairMember(malformed)
		assert.False(t, ok, "member %q", malformed)
	}
}
