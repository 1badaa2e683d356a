package spacecharge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nusense/larsim/geometry"
)

func TestDisabled(t *testing.T) {
	sce := Disabled()
	assert.False(t, sce.EfieldOffsetsEnabled())
	assert.Equal(t, geometry.Vec3D{}, sce.EfieldOffsets(geometry.Point{X: 1e9}))
}

func TestUniform(t *testing.T) {
	offsets := geometry.Vec3D{X: 0.02, Y: -0.01, Z: 0.005}
	sce := Uniform(offsets)

	assert.True(t, sce.EfieldOffsetsEnabled())
	// total over space: every position answers, with the same offset
	for _, p := range []geometry.Point{{}, {X: -500}, {X: 10, Y: 20, Z: 30}} {
		assert.Equal(t, offsets, sce.EfieldOffsets(p))
	}
}
