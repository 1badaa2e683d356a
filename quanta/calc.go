// Package quanta computes the ionization electrons and scintillation
// photons produced by a localized energy deposit in liquid argon. The two
// quantities are anticorrelated through electron-ion recombination: quanta
// that do not end up as free electrons are emitted as scintillation light.
package quanta

import (
	log "github.com/sirupsen/logrus"

	"github.com/nusense/larsim/detector"
	"github.com/nusense/larsim/sim"
	"github.com/nusense/larsim/spacecharge"
)

const (
	// wph is the ion+excitation work function, MeV per quantum (19.5 eV).
	wph = 19.5e-6

	// minDEdx guards against spurious dE/dx values from very short or
	// missing steps. Assumes liquid argon density.
	minDEdx = 1.0
)

// Result holds the quanta produced by a single energy deposit. It is a
// plain value created fresh per Calculate call.
type Result struct {
	// EnergyDeposit is the deposited energy, MeV.
	EnergyDeposit float64
	NumElectrons  float64
	NumPhotons    float64
	// ScintYieldRatio is the fast (singlet) fraction of the emitted light.
	ScintYieldRatio float64
}

// Calculator splits energy deposits into ionization electrons and
// scintillation photons. It is immutable after New and safe for concurrent
// use as long as its space-charge service supports concurrent reads.
type Calculator struct {
	model Model
	larql *LarqlCorrection

	// wion is the ionization work function, MeV per electron.
	wion          float64
	scintPreScale float64

	byParticleType bool
	yieldRatios    YieldRatios
	defaultYield   float64

	sce spacecharge.Service
}

// New resolves cfg against the detector state and returns an immutable
// Calculator. Density-dependent model coefficients are divided by the
// medium density here, so per-call evaluation needs no density lookup.
func New(cfg Config, det detector.State, sce spacecharge.Service) (*Calculator, error) {
	if err := checkConfig(cfg, det); err != nil {
		return nil, err
	}

	model := cfg.Model
	switch m := model.(type) {
	case ModBox:
		m.B /= det.Density
		model = m
	case Birks:
		m.K /= det.Density
		model = m
	}

	if sce == nil {
		sce = spacecharge.Disabled()
	}

	calc := &Calculator{
		model:          model,
		larql:          cfg.LowFieldCorrection,
		wion:           1.0 / cfg.ElectronsPerGeV * 1e3,
		scintPreScale:  cfg.ScintPreScale,
		byParticleType: cfg.ScintByParticleType,
		yieldRatios:    cfg.YieldRatios,
		defaultYield:   cfg.DefaultYieldRatio,
		sce:            sce,
	}

	log.Debugf("quanta calculator initialized: model %T, Wion %g MeV, Wph %g MeV", calc.model, calc.wion, wph)
	return calc, nil
}

// Calculate splits the deposit into ionization electrons and scintillation
// photons under the given detector state. It is a pure function of its
// inputs and the construction-time configuration.
func (c *Calculator) Calculate(det detector.State, edep sim.EnergyDeposit) Result {
	energy := edep.Energy

	// total quanta, ions plus excitons
	nq := energy / wph

	dEdx := 0.0
	if !edep.PointLike() {
		dEdx = energy / edep.StepLength
	}
	if dEdx < minDEdx {
		dEdx = minDEdx
	}

	field := c.EfieldAtStep(det.Efield, edep.MidPoint)
	recomb := c.recombinationFraction(dEdx, edep.StepLength, field)

	electrons := (energy / c.wion) * recomb
	photons := (nq - electrons) * c.scintPreScale

	log.Debugf("%g MeV deposited with %g recombination: %g electrons, %g photons",
		energy, recomb, electrons, photons)

	return Result{
		EnergyDeposit:   energy,
		NumElectrons:    electrons,
		NumPhotons:      photons,
		ScintYieldRatio: c.ScintYieldRatio(edep.Particle),
	}
}
