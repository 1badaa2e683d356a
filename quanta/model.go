package quanta

// Model selects and parameterizes the base recombination formula. Exactly
// one concrete model is carried by a Config; the set is closed to ModBox
// and Birks.
type Model interface {
	recombinationModel()
}

// ModBox holds the modified-box model coefficients. B is configured in
// g/(MeV cm^2) and divided by the medium density at construction, so the
// per-step evaluation works directly on dE/dx in MeV/cm.
type ModBox struct {
	A float64
	B float64
}

// Birks holds the Birks-law model coefficients. K is configured in
// (kV/cm)(g/cm^2)/MeV and divided by the medium density at construction.
type Birks struct {
	A float64
	K float64
}

func (ModBox) recombinationModel() {}
func (Birks) recombinationModel()  {}

// LarqlCorrection parameterizes the LArQL low-field correction: an additive
// escape term suppressed at high field. A nil correction disables it.
type LarqlCorrection struct {
	// Chi0A..Chi0D parameterize the field-independent escaping fraction.
	Chi0A float64
	Chi0B float64
	Chi0C float64
	Chi0D float64
	// Alpha and Beta parameterize the field dependence of the correction.
	Alpha float64
	Beta  float64
}
