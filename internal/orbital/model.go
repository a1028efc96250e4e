// Package orbital models hydrogen-like electron energy levels and the
// quantized transitions between them.
package orbital

import (
	"errors"
	"math"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/logging"
	"github.com/san-kum/atomica/internal/units"
)

// ErrInvalidLevel indicates a transition target below n=1 or a missing
// electron/atom; state is left untouched.
var ErrInvalidLevel = errors.New("orbital: invalid transition target")

// Band classifies a photon wavelength.
type Band int

const (
	Ultraviolet Band = iota
	Visible
	Infrared
)

func (b Band) String() string {
	switch b {
	case Ultraviolet:
		return "ultraviolet"
	case Visible:
		return "visible"
	case Infrared:
		return "infrared"
	default:
		return "unknown"
	}
}

// Model computes orbital energies and performs electron jumps. It is the
// only physics sub-model that mutates state outside the tick integrator.
type Model struct {
	log logging.Logger
}

func NewModel(log logging.Logger) *Model {
	if log == nil {
		log = logging.Nop{}
	}
	return &Model{log: log}
}

// LevelEnergy returns the hydrogen-like orbital energy in eV:
// E(n) = -Rydberg * Z^2 / n^2. Non-positive levels log and return zero.
func (m *Model) LevelEnergy(atomicNumber, level int) float64 {
	if level <= 0 {
		m.log.Errorf("orbital level must be positive, got %d", level)
		return 0
	}
	z := float64(atomicNumber)
	n := float64(level)
	return -units.RydbergEV * z * z / (n * n)
}

// Jump moves the electron to newLevel and returns the photon energy
// difference in eV. Positive means absorption, negative means emission.
// An invalid target returns zero with ErrInvalidLevel and no mutation.
func (m *Model) Jump(e *atomic.Electron, a *atomic.Atom, newLevel int) (float64, error) {
	if e == nil || a == nil {
		m.log.Errorf("jump requires both an electron and its atom")
		return 0, ErrInvalidLevel
	}
	if newLevel < 1 {
		m.log.Errorf("jump target level must be >= 1, got %d", newLevel)
		return 0, ErrInvalidLevel
	}

	current := e.Level()
	deltaE := m.LevelEnergy(a.AtomicNumber(), newLevel) -
		m.LevelEnergy(a.AtomicNumber(), current)

	e.SetLevel(newLevel)
	m.log.Infof("electron jumped n=%d -> n=%d in Z=%d, dE=%f eV",
		current, newLevel, a.AtomicNumber(), deltaE)
	return deltaE, nil
}

// Wavelength converts a photon energy in eV to its wavelength in nm using
// lambda = 1240 / |dE|. Zero energy maps to +Inf.
func Wavelength(deltaE float64) float64 {
	if deltaE == 0 {
		return math.Inf(1)
	}
	return 1240.0 / math.Abs(deltaE)
}

// ClassifyBand buckets a wavelength in nm into ultraviolet (<380),
// visible (380-750 inclusive) or infrared (>750).
func ClassifyBand(wavelengthNm float64) Band {
	switch {
	case wavelengthNm < 380:
		return Ultraviolet
	case wavelengthNm <= 750:
		return Visible
	default:
		return Infrared
	}
}
