package units

import "math"

// Semi-empirical mass formula coefficients, MeV.
const (
	semfVolume    = 15.75
	semfSurface   = 17.8
	semfCoulomb   = 0.711
	semfAsymmetry = 23.7
	semfPairing   = 11.18
)

// BindingEnergy computes the total nuclear binding energy of a nuclide with
// mass number a and atomic number z using the semi-empirical mass formula.
// The result is in MeV and clamped at zero; invalid nuclides return 0.
func BindingEnergy(a, z int) float64 {
	if a <= 0 || z < 0 || z > a {
		return 0
	}

	fa := float64(a)
	fz := float64(z)
	n := a - z

	volume := semfVolume * fa
	surface := semfSurface * math.Pow(fa, 2.0/3.0)
	coulomb := semfCoulomb * fz * fz / math.Cbrt(fa)
	asymmetry := semfAsymmetry * float64((n-z)*(n-z)) / fa

	pairing := 0.0
	switch {
	case z%2 == 0 && n%2 == 0:
		pairing = semfPairing / math.Sqrt(fa)
	case z%2 == 1 && n%2 == 1:
		pairing = -semfPairing / math.Sqrt(fa)
	}

	be := volume - surface - coulomb - asymmetry + pairing
	return math.Max(0, be)
}
