// Package chem classifies bond types between atom pairs and maps each type
// to a tabulated dissociation energy.
package chem

import (
	"errors"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/logging"
)

// ErrUnknownBondType indicates a bond type missing from the energy table, a
// configuration gap rather than a crash.
var ErrUnknownBondType = errors.New("chem: no tabulated energy for bond type")

// Calculator determines bond types from atomic numbers and looks up their
// energies. The classification is a fixed rule table, not an
// electronegativity model.
type Calculator struct {
	energies map[atomic.BondType]float64
	log      logging.Logger
}

func NewCalculator(log logging.Logger) *Calculator {
	if log == nil {
		log = logging.Nop{}
	}
	return &Calculator{
		energies: map[atomic.BondType]float64{
			atomic.Single:   4.5,
			atomic.Double:   8.0,
			atomic.Triple:   10.0,
			atomic.Ionic:    5.0,
			atomic.Metallic: 2.0,
			atomic.Hydrogen: 0.2,
		},
		log: log,
	}
}

// DetermineType classifies the bond between two atoms. Rules are evaluated
// top to bottom, first match wins; anything unrecognized falls back to a
// single bond.
func (c *Calculator) DetermineType(a, b *atomic.Atom) atomic.BondType {
	za, zb := a.AtomicNumber(), b.AtomicNumber()
	switch {
	case za == 1 && zb == 1:
		return atomic.Single // H-H
	case (za == 1 && zb == 8) || (za == 8 && zb == 1):
		return atomic.Single // O-H
	case za == 8 && zb == 8:
		return atomic.Double // O=O
	case za == 7 && zb == 7:
		return atomic.Triple // N#N
	default:
		return atomic.Single
	}
}

// Energy returns the tabulated energy in eV for a bond type. An unmapped
// type logs a diagnostic and returns zero with ErrUnknownBondType; callers
// must treat zero as a possible miss.
func (c *Calculator) Energy(t atomic.BondType) (float64, error) {
	e, ok := c.energies[t]
	if !ok {
		c.log.Warnf("no bond energy tabulated for type %v", t)
		return 0, ErrUnknownBondType
	}
	return e, nil
}

// Bind classifies the pair and builds the bond with its tabulated energy.
func (c *Calculator) Bind(a, b *atomic.Atom) *atomic.Bond {
	t := c.DetermineType(a, b)
	e, err := c.Energy(t)
	if err != nil {
		c.log.Warnf("binding %d-%d with zero energy: %v", a.AtomicNumber(), b.AtomicNumber(), err)
	}
	return atomic.NewBond(a, b, t, e)
}
