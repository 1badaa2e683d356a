// Package detector describes the bulk state of the liquid argon volume.
package detector

// State is the read-only bulk detector state consumed by the quanta
// calculator. Efield is the nominal drift field in kV/cm, Temperature is in
// kelvin and Density in g/cm^3.
type State struct {
	Efield      float64 `json:"efield"`
	Temperature float64 `json:"temperature"`
	Density     float64 `json:"density"`
}

// DensityAtTemperature returns the liquid argon density in g/cm^3 at the
// given temperature in kelvin, from a linear fit to the saturation curve.
func DensityAtTemperature(temperature float64) float64 {
	return -0.00615*temperature + 1.928
}

// DefaultState holds the nominal single-phase detector conditions.
var DefaultState = State{
	Efield:      0.5,
	Temperature: 89.0,
	Density:     DensityAtTemperature(89.0),
}
