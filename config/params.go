package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nusense/larsim/detector"
	"github.com/nusense/larsim/geometry"
	"github.com/nusense/larsim/quanta"
	"github.com/nusense/larsim/spacecharge"
)

// YieldRatios mirrors quanta.YieldRatios in the parameter file.
type YieldRatios struct {
	Proton   float64 `yaml:"proton"`
	Muon     float64 `yaml:"muon"`
	Pion     float64 `yaml:"pion"`
	Kaon     float64 `yaml:"kaon"`
	Alpha    float64 `yaml:"alpha"`
	Electron float64 `yaml:"electron"`
}

// Params is the recognized calculator parameter set. Field names follow the
// parameter service of the original transport code, so existing parameter
// sets translate one to one.
type Params struct {
	// UseModBoxRecomb selects the modified-box model; when false the
	// Birks model (recombA, recombk) is used instead.
	UseModBoxRecomb bool    `yaml:"useModBoxRecomb"`
	ModBoxA         float64 `yaml:"modBoxA"`
	ModBoxB         float64 `yaml:"modBoxB"`
	RecombA         float64 `yaml:"recombA"`
	RecombK         float64 `yaml:"recombk"`

	UseModLarqlRecomb bool    `yaml:"useModLarqlRecomb"`
	LarqlChi0A        float64 `yaml:"larqlChi0A"`
	LarqlChi0B        float64 `yaml:"larqlChi0B"`
	LarqlChi0C        float64 `yaml:"larqlChi0C"`
	LarqlChi0D        float64 `yaml:"larqlChi0D"`
	LarqlAlpha        float64 `yaml:"larqlAlpha"`
	LarqlBeta         float64 `yaml:"larqlBeta"`

	ElectronsPerGeV float64 `yaml:"electronsPerGeV"`
	ScintPreScale   float64 `yaml:"scintPreScale"`

	ScintByParticleType bool        `yaml:"scintByParticleType"`
	ScintYieldRatio     float64     `yaml:"scintYieldRatio"`
	ScintYieldRatios    YieldRatios `yaml:"scintYieldRatios"`

	Efield      float64 `yaml:"efield"`
	Temperature float64 `yaml:"temperature"`

	// EfieldOffsets enables a uniform space-charge field distortion; nil
	// leaves the distortion disabled.
	EfieldOffsets *geometry.Vec3D `yaml:"efieldOffsets"`
}

// DefaultParams returns the nominal liquid argon parameter set.
func DefaultParams() Params {
	return Params{
		UseModBoxRecomb: true,
		ModBoxA:         0.93,
		ModBoxB:         0.212,
		RecombA:         0.8,
		RecombK:         0.0486,

		UseModLarqlRecomb: false,
		LarqlChi0A:        0.00338427,
		LarqlChi0B:        -6.57037,
		LarqlChi0C:        1.88418,
		LarqlChi0D:        0.000129379,
		LarqlAlpha:        0.0372,
		LarqlBeta:         0.0124,

		ElectronsPerGeV: 4.237e7,
		ScintPreScale:   1.0,

		ScintByParticleType: false,
		ScintYieldRatio:     0.23,
		ScintYieldRatios: YieldRatios{
			Proton:   0.29,
			Muon:     0.23,
			Pion:     0.23,
			Kaon:     0.23,
			Alpha:    0.56,
			Electron: 0.27,
		},

		Efield:      0.5,
		Temperature: 89.0,
	}
}

// LoadParams reads a YAML parameter file on top of the defaults, so a file
// only needs to name the parameters it overrides. An empty path selects the
// defaults unchanged.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	if path == "" {
		return params, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("params file read error: %s", err.Error())
	}
	if err := yaml.Unmarshal(content, &params); err != nil {
		return Params{}, fmt.Errorf("params file %s parse error: %s", path, err.Error())
	}
	return params, nil
}

// CalculatorConfig builds the quanta configuration selected by the
// parameter set. Exactly one base model is produced.
func (p Params) CalculatorConfig() quanta.Config {
	var model quanta.Model
	if p.UseModBoxRecomb {
		model = quanta.ModBox{A: p.ModBoxA, B: p.ModBoxB}
	} else {
		model = quanta.Birks{A: p.RecombA, K: p.RecombK}
	}

	var larql *quanta.LarqlCorrection
	if p.UseModLarqlRecomb {
		larql = &quanta.LarqlCorrection{
			Chi0A: p.LarqlChi0A,
			Chi0B: p.LarqlChi0B,
			Chi0C: p.LarqlChi0C,
			Chi0D: p.LarqlChi0D,
			Alpha: p.LarqlAlpha,
			Beta:  p.LarqlBeta,
		}
	}

	return quanta.Config{
		Model:              model,
		LowFieldCorrection: larql,
		ElectronsPerGeV:    p.ElectronsPerGeV,
		ScintPreScale:      p.ScintPreScale,

		ScintByParticleType: p.ScintByParticleType,
		YieldRatios: quanta.YieldRatios{
			Proton:   p.ScintYieldRatios.Proton,
			Muon:     p.ScintYieldRatios.Muon,
			Pion:     p.ScintYieldRatios.Pion,
			Kaon:     p.ScintYieldRatios.Kaon,
			Alpha:    p.ScintYieldRatios.Alpha,
			Electron: p.ScintYieldRatios.Electron,
		},
		DefaultYieldRatio: p.ScintYieldRatio,
	}
}

// DetectorState derives the bulk detector state from the parameter set.
func (p Params) DetectorState() detector.State {
	return detector.State{
		Efield:      p.Efield,
		Temperature: p.Temperature,
		Density:     detector.DensityAtTemperature(p.Temperature),
	}
}

// SpaceCharge returns the space-charge service selected by the parameter
// set.
func (p Params) SpaceCharge() spacecharge.Service {
	if p.EfieldOffsets == nil {
		return spacecharge.Disabled()
	}
	return spacecharge.Uniform(*p.EfieldOffsets)
}
