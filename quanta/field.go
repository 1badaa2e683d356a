package quanta

import "github.com/nusense/larsim/geometry"

// EfieldAtStep returns the drift field magnitude at p, including any
// simulated space-charge distortion of the nominal field. The X component
// of the offset lies along the drift axis, so it adds to the unit field
// direction before taking the norm.
func (c *Calculator) EfieldAtStep(efield float64, p geometry.Point) float64 {
	if !c.sce.EfieldOffsetsEnabled() {
		return efield
	}
	offsets := c.sce.EfieldOffsets(p)
	return efield * geometry.Vec3D{X: 1 + offsets.X, Y: offsets.Y, Z: offsets.Z}.Norm()
}
