package atomic

import "errors"

// Domain errors for particle and atom construction.
var (
	// ErrNonPositiveMass indicates a particle built with mass <= 0. The
	// integrator divides by mass, so this is rejected at construction.
	ErrNonPositiveMass = errors.New("atomic: particle mass must be positive")

	// ErrInvalidNuclide indicates atomic/mass numbers that cannot describe a
	// nucleus (Z < 0 or A < Z).
	ErrInvalidNuclide = errors.New("atomic: invalid atomic/mass number pair")
)
