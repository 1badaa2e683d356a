// Package sim holds the value types describing simulated energy deposits.
package sim

import "github.com/nusense/larsim/geometry"

// EnergyDeposit is a single localized energy deposit inside the detector
// volume. A step length of zero or less marks a point-like deposit with no
// meaningful track direction.
type EnergyDeposit struct {
	// Energy deposited, MeV.
	Energy float64 `json:"energy"`
	// StepLength of the depositing track segment, cm.
	StepLength float64 `json:"stepLength"`

	Particle Particle       `json:"particle"`
	MidPoint geometry.Point `json:"midPoint"`
}

// PointLike reports whether the deposit carries no usable track length.
func (d EnergyDeposit) PointLike() bool {
	return d.StepLength <= 0
}
