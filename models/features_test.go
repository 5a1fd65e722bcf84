package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureSetFlags(t *testing.T) {
	var empty FeatureSet
	for i, v := range empty.Flags() {
		assert.False(t, v, "flag %d", i)
	}

	fs := FeatureSet{Pool: true, Bright: true}
	flags := fs.Flags()
	assert.True(t, flags[0])
	assert.True(t, flags[NumFeatures-1])

	var set int
	for _, v := range flags {
		if v {
			set++
		}
	}
	assert.Equal(t, 2, set)
}
