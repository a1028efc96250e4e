// Package units holds the physical constants and unit conversions shared by
// the physics sub-models.
package units

// Physical constants (SI).
const (
	ElementaryCharge = 1.602176634e-19  // C
	ElectronMass     = 9.1093837015e-31 // kg
	ProtonMass       = 1.67262192369e-27 // kg
	NeutronMass      = 1.67492749804e-27 // kg
	SpeedOfLight     = 299792458.0      // m/s
	PlanckConstant   = 6.62607015e-34   // J*s
	Boltzmann        = 1.380649e-23     // J/K
	Avogadro         = 6.02214076e23    // 1/mol
	AtomicMassUnit   = 1.66053906660e-27 // kg
	CoulombConstant  = 8.9875e9         // N*m^2/C^2
	RydbergEV        = 13.605693        // eV
)

// Conversion factors. The inverse factors are derived so round trips only
// lose one rounding step.
const (
	EVToJoulesFactor = 1.602176634e-19
	JoulesToEVFactor = 1 / EVToJoulesFactor
	AMUToKgFactor    = 1.66053906660e-27
	KgToAMUFactor    = 1 / AMUToKgFactor
)
