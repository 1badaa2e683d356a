package sim

// Particle identifies the species of the particle that produced an energy
// deposit. The names follow the predefined particle naming used in the
// transport codes feeding this package.
type Particle string

// Species recognized by the scintillation yield lookup. Anything outside
// this set is treated as Electron.
const (
	Proton    Particle = "proton"
	MuonMinus Particle = "muon_minus"
	MuonPlus  Particle = "muon_plus"
	PionMinus Particle = "pion_pi_minus"
	PionPlus  Particle = "pion_pi_plus"
	KaonMinus Particle = "kaon_minus"
	KaonPlus  Particle = "kaon_plus"
	Alpha     Particle = "he_4"
	Electron  Particle = "electron"
	Positron  Particle = "positron"
	Gamma     Particle = "gamma"
)

// ParticleFromPDG maps a PDG Monte Carlo code to a Particle. The mapping is
// total: codes outside the recognized set map to Electron.
func ParticleFromPDG(code int64) Particle {
	switch code {
	case 2212:
		return Proton
	case 13:
		return MuonMinus
	case -13:
		return MuonPlus
	case 211:
		return PionPlus
	case -211:
		return PionMinus
	case 321:
		return KaonPlus
	case -321:
		return KaonMinus
	case 1000020040:
		return Alpha
	case 11:
		return Electron
	case -11:
		return Positron
	case 22:
		return Gamma
	default:
		return Electron
	}
}
