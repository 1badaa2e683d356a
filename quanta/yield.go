package quanta

import "github.com/nusense/larsim/sim"

// ScintYieldRatio returns the fast-light fraction of scintillation for the
// given species: the ratio of the singlet component to the total singlet
// plus triplet light. The lookup is total; species outside the recognized
// set take the electron ratio.
func (c *Calculator) ScintYieldRatio(particle sim.Particle) float64 {
	if !c.byParticleType {
		return c.defaultYield
	}

	switch particle {
	case sim.Proton:
		return c.yieldRatios.Proton
	case sim.MuonMinus, sim.MuonPlus:
		return c.yieldRatios.Muon
	case sim.PionMinus, sim.PionPlus:
		return c.yieldRatios.Pion
	case sim.KaonMinus, sim.KaonPlus:
		return c.yieldRatios.Kaon
	case sim.Alpha:
		return c.yieldRatios.Alpha
	case sim.Electron, sim.Positron, sim.Gamma:
		return c.yieldRatios.Electron
	default:
		return c.yieldRatios.Electron
	}
}
