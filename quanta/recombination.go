package quanta

import "math"

// recombinationFraction returns the fraction of ionization electrons that
// survive recombination for the given ionization density (MeV/cm, already
// floored to minDEdx) and effective field (kV/cm). The result is not
// clamped: with the low-field correction enabled the sum can leave [0,1],
// and a non-positive field propagates NaN/Inf to the caller.
func (c *Calculator) recombinationFraction(dEdx, stepLength, field float64) float64 {
	var recomb float64

	switch m := c.model.(type) {
	case ModBox:
		// a point-like deposit has no meaningful dE/dx; nothing recombines
		if stepLength > 0 {
			xi := m.B * dEdx / field
			recomb = math.Log(m.A+xi) / xi
		}
	case Birks:
		recomb = m.A / (1.0 + dEdx*m.K/field)
	}

	if c.larql != nil {
		recomb += c.larql.escapingFraction(dEdx) * c.larql.fieldCorrection(field, dEdx)
	}

	return recomb
}

// escapingFraction is the LArQL chi0 function: the fraction of electrons
// escaping recombination independently of the field.
func (l *LarqlCorrection) escapingFraction(dEdx float64) float64 {
	return l.Chi0A / (l.Chi0B + math.Exp(l.Chi0C+l.Chi0D*dEdx))
}

// fieldCorrection is the LArQL f_corr function: it suppresses the escape
// term at high field and grows it at low field. Requires dEdx > 0.
func (l *LarqlCorrection) fieldCorrection(field, dEdx float64) float64 {
	return math.Exp(-field / (l.Alpha*math.Log(dEdx) + l.Beta))
}
