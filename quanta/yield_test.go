package quanta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nusense/larsim/sim"
)

func yieldTestConfig() Config {
	cfg := testConfig()
	cfg.ScintByParticleType = true
	cfg.YieldRatios = YieldRatios{
		Proton:   0.29,
		Muon:     0.23,
		Pion:     0.24,
		Kaon:     0.25,
		Alpha:    0.56,
		Electron: 0.27,
	}
	return cfg
}

func TestScintYieldRatioByParticleType(t *testing.T) {
	calc := newTestCalculator(t, yieldTestConfig())

	testCases := []struct {
		Particle sim.Particle
		Expected float64
	}{
		{sim.Proton, 0.29},
		{sim.MuonMinus, 0.23},
		{sim.MuonPlus, 0.23},
		{sim.PionMinus, 0.24},
		{sim.PionPlus, 0.24},
		{sim.KaonMinus, 0.25},
		{sim.KaonPlus, 0.25},
		{sim.Alpha, 0.56},
		{sim.Electron, 0.27},
		{sim.Positron, 0.27},
		{sim.Gamma, 0.27},
		// outside the recognized set: falls back to the electron ratio
		{sim.Particle("deuteron"), 0.27},
		{sim.Particle(""), 0.27},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Expected, calc.ScintYieldRatio(tc.Particle), "particle %q", tc.Particle)
		// deterministic: repeated lookups agree
		assert.Equal(t, tc.Expected, calc.ScintYieldRatio(tc.Particle), "particle %q", tc.Particle)
	}
}

func TestScintYieldRatioSingleRatio(t *testing.T) {
	cfg := yieldTestConfig()
	cfg.ScintByParticleType = false
	cfg.DefaultYieldRatio = 0.3
	calc := newTestCalculator(t, cfg)

	for _, particle := range []sim.Particle{sim.Proton, sim.Alpha, sim.Gamma, sim.Particle("triton")} {
		assert.Equal(t, 0.3, calc.ScintYieldRatio(particle))
	}
}
