// Package spacecharge provides access to the simulated space-charge
// distortion of the drift field.
package spacecharge

import "github.com/nusense/larsim/geometry"

// Service supplies per-position fractional perturbations of the nominal
// drift field. Implementations must be safe for concurrent reads and total
// over space: positions outside the modeled volume yield a zero offset.
type Service interface {
	// EfieldOffsetsEnabled reports whether field distortions are simulated.
	EfieldOffsetsEnabled() bool
	// EfieldOffsets returns the fractional field distortion vector at p.
	// The X component lies along the drift axis.
	EfieldOffsets(p geometry.Point) geometry.Vec3D
}

type disabled struct{}

func (disabled) EfieldOffsetsEnabled() bool                  { return false }
func (disabled) EfieldOffsets(geometry.Point) geometry.Vec3D { return geometry.Vec3D{} }

// Disabled returns a Service that applies no field distortion.
func Disabled() Service {
	return disabled{}
}

type uniform struct {
	offsets geometry.Vec3D
}

func (uniform) EfieldOffsetsEnabled() bool { return true }

func (u uniform) EfieldOffsets(geometry.Point) geometry.Vec3D {
	return u.offsets
}

// Uniform returns a Service applying the same fractional offset everywhere.
func Uniform(offsets geometry.Vec3D) Service {
	return uniform{offsets: offsets}
}
