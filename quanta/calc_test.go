package quanta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusense/larsim/detector"
	"github.com/nusense/larsim/geometry"
	"github.com/nusense/larsim/sim"
	"github.com/nusense/larsim/spacecharge"
)

// unit density makes the configured model coefficients effective as-is
var testDetector = detector.State{Efield: 0.5, Temperature: 89.0, Density: 1.0}

func testConfig() Config {
	return Config{
		Model:             ModBox{A: 0.93, B: 0.212},
		ElectronsPerGeV:   4.237e7,
		ScintPreScale:     1.0,
		DefaultYieldRatio: 0.23,
	}
}

func newTestCalculator(t *testing.T, cfg Config) *Calculator {
	calc, err := New(cfg, testDetector, spacecharge.Disabled())
	require.NoError(t, err)
	return calc
}

func TestCalculateModBoxScenario(t *testing.T) {
	calc := newTestCalculator(t, testConfig())

	// 1 MeV over 0.3 cm at 0.5 kV/cm:
	// dE/dx = 3.333 MeV/cm, Xi = 0.212*3.333/0.5 = 1.4133,
	// recomb = ln(0.93+1.4133)/1.4133 = 0.60253
	result := calc.Calculate(testDetector, sim.EnergyDeposit{
		Energy:     1.0,
		StepLength: 0.3,
		Particle:   sim.MuonMinus,
	})

	assert.Equal(t, 1.0, result.EnergyDeposit)
	assert.InEpsilon(t, 25529.3, result.NumElectrons, 1e-4)
	assert.InEpsilon(t, 51282.05-25529.3, result.NumPhotons, 1e-4)
	assert.Equal(t, 0.23, result.ScintYieldRatio)
}

func TestCalculateQuantaConservation(t *testing.T) {
	// photons/prescale + electrons == E/Wph while the low-field correction
	// is off, for any energy, step length and positive field
	cfg := testConfig()
	cfg.ScintPreScale = 0.75
	calc := newTestCalculator(t, cfg)

	for _, energy := range []float64{0.01, 0.63, 1.0, 10.0, 250.0} {
		for _, ds := range []float64{0.003, 0.1, 0.3, 1.5} {
			result := calc.Calculate(testDetector, sim.EnergyDeposit{
				Energy:     energy,
				StepLength: ds,
				Particle:   sim.Electron,
			})

			totalQuanta := energy / wph
			assert.InEpsilon(t, totalQuanta, result.NumPhotons/0.75+result.NumElectrons, 1e-12)
			assert.GreaterOrEqual(t, result.NumElectrons, 0.0)
			assert.LessOrEqual(t, result.NumElectrons, energy/calc.wion*(1+1e-12))
		}
	}
}

func TestCalculatePointDepositModBox(t *testing.T) {
	// no step length means no meaningful dE/dx: nothing recombines and all
	// quanta come out as light
	calc := newTestCalculator(t, testConfig())

	for _, ds := range []float64{0.0, -1.0} {
		result := calc.Calculate(testDetector, sim.EnergyDeposit{
			Energy:     1.0,
			StepLength: ds,
			Particle:   sim.Gamma,
		})

		assert.Zero(t, result.NumElectrons)
		assert.InEpsilon(t, 1.0/wph, result.NumPhotons, 1e-12)
	}
}

func TestCalculatePointDepositBirks(t *testing.T) {
	// the Birks model has no point-deposit special case; dE/dx is floored
	// to 1 and the formula still applies
	cfg := testConfig()
	cfg.Model = Birks{A: 0.8, K: 0.0486}
	calc := newTestCalculator(t, cfg)

	result := calc.Calculate(testDetector, sim.EnergyDeposit{
		Energy:     1.0,
		StepLength: 0,
		Particle:   sim.Gamma,
	})

	expectedRecomb := 0.8 / (1.0 + 1.0*0.0486/0.5)
	assert.InEpsilon(t, 1.0/calc.wion*expectedRecomb, result.NumElectrons, 1e-12)
}

func TestCalculateDensityCorrectedCoefficients(t *testing.T) {
	// the density division at construction must make (B, density) and
	// (2B, 2*density) indistinguishable per call
	edep := sim.EnergyDeposit{Energy: 1.0, StepLength: 0.3, Particle: sim.MuonMinus}

	unit, err := New(testConfig(), testDetector, spacecharge.Disabled())
	require.NoError(t, err)

	doubled := testDetector
	doubled.Density = 2.0
	cfg := testConfig()
	cfg.Model = ModBox{A: 0.93, B: 2 * 0.212}
	scaled, err := New(cfg, doubled, spacecharge.Disabled())
	require.NoError(t, err)

	assert.Equal(t, unit.Calculate(testDetector, edep), scaled.Calculate(doubled, edep))
}

func TestCalculateZeroFieldUnguarded(t *testing.T) {
	// a non-positive field is not masked: the modified-box model degrades
	// to ln(Inf)/Inf = NaN and the caller sees it
	calc := newTestCalculator(t, testConfig())
	noField := detector.State{Efield: 0.0, Density: 1.0}

	result := calc.Calculate(noField, sim.EnergyDeposit{
		Energy:     1.0,
		StepLength: 0.3,
		Particle:   sim.MuonMinus,
	})

	assert.True(t, math.IsNaN(result.NumElectrons))
}

func TestCalculateWithFieldDistortion(t *testing.T) {
	cfg := testConfig()
	sce := spacecharge.Uniform(geometry.Vec3D{X: -1, Y: 3, Z: 4})
	calc, err := New(cfg, testDetector, sce)
	require.NoError(t, err)

	// offsets (-1, 3, 4) scale the nominal field by norm(0, 3, 4) = 5
	distorted := calc.EfieldAtStep(0.5, geometry.Point{})
	assert.InEpsilon(t, 2.5, distorted, 1e-12)

	plain := newTestCalculator(t, cfg)
	boosted := plain.Calculate(detector.State{Efield: 2.5, Density: 1.0}, sim.EnergyDeposit{
		Energy: 1.0, StepLength: 0.3, Particle: sim.MuonMinus,
	})
	viaOffsets := calc.Calculate(testDetector, sim.EnergyDeposit{
		Energy: 1.0, StepLength: 0.3, Particle: sim.MuonMinus,
	})
	assert.Equal(t, boosted, viaOffsets)
}
