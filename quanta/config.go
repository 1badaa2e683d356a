package quanta

import (
	"errors"
	"fmt"

	"github.com/nusense/larsim/detector"
)

// YieldRatios holds the fast-light fraction of scintillation per species
// category. Both muon charges share one ratio, as do both pion and kaon
// charges; electrons, positrons and gammas share the Electron ratio.
type YieldRatios struct {
	Proton   float64
	Muon     float64
	Pion     float64
	Kaon     float64
	Alpha    float64
	Electron float64
}

// Config collects the constants the calculator resolves once at
// construction. It is never mutated afterwards.
type Config struct {
	Model              Model
	LowFieldCorrection *LarqlCorrection

	// ElectronsPerGeV is the number of ionization electrons produced per
	// GeV at zero recombination; the ionization work function is derived
	// from it.
	ElectronsPerGeV float64
	ScintPreScale   float64

	// ScintByParticleType switches the yield lookup from DefaultYieldRatio
	// to the per-species YieldRatios table.
	ScintByParticleType bool
	YieldRatios         YieldRatios
	DefaultYieldRatio   float64
}

type checkFunc func(cfg Config, det detector.State) error

func checkConfig(cfg Config, det detector.State) error {
	checkFuncs := []checkFunc{
		checkModel,
		checkWorkFunction,
		checkDensity,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(cfg, det); err != nil {
			return err
		}
	}

	return nil
}

func checkModel(cfg Config, det detector.State) error {
	switch m := cfg.Model.(type) {
	case ModBox:
		if m.A <= 0 || m.B <= 0 {
			return fmt.Errorf("modified-box coefficients must be positive, got A=%g B=%g", m.A, m.B)
		}
	case Birks:
		if m.A <= 0 || m.K <= 0 {
			return fmt.Errorf("Birks coefficients must be positive, got A=%g k=%g", m.A, m.K)
		}
	case nil:
		return errors.New("no recombination model configured")
	default:
		return fmt.Errorf("unknown recombination model %T", cfg.Model)
	}
	return nil
}

func checkWorkFunction(cfg Config, det detector.State) error {
	if cfg.ElectronsPerGeV <= 0 {
		return fmt.Errorf("electrons per GeV must be positive, got %g", cfg.ElectronsPerGeV)
	}
	return nil
}

func checkDensity(cfg Config, det detector.State) error {
	if det.Density <= 0 {
		return fmt.Errorf("medium density must be positive, got %g", det.Density)
	}
	return nil
}
