// Package nuclear computes energy release for two hard-coded reaction
// channels via mass defect: U-235 fission and D-T fusion.
package nuclear

import (
	"errors"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/logging"
	"github.com/san-kum/atomica/internal/units"
)

// Domain errors for reaction requests.
var (
	// ErrUnsupportedNuclide indicates a reaction requested on nuclides the
	// model has no channel for. Reported, never fatal.
	ErrUnsupportedNuclide = errors.New("nuclear: unsupported nuclide for this reaction")

	// ErrNoMassDefect indicates a computed mass defect <= 0; the reaction
	// must not produce negative energy.
	ErrNoMassDefect = errors.New("nuclear: non-positive mass defect")
)

// Nuclide rest masses in amu.
const (
	massU235    = 235.0439299
	massBa141   = 140.914411
	massKr92    = 91.926156
	massD       = 2.01410178
	massT       = 3.01604927
	massHe4     = 4.00260325
	massNeutron = 1.008665
)

// Reactor holds no state; both reactions read the nuclei's atomic and mass
// numbers only and never spawn product particles.
type Reactor struct {
	log logging.Logger
}

func NewReactor(log logging.Logger) *Reactor {
	if log == nil {
		log = logging.Nop{}
	}
	return &Reactor{log: log}
}

// Fission computes the energy released by neutron-induced fission of U-235
// into Ba-141, Kr-92 and three neutrons. The incident neutron is part of the
// reactant mass. Any other nuclide returns zero with ErrUnsupportedNuclide.
func (r *Reactor) Fission(n *atomic.Nucleus) (float64, error) {
	if n.AtomicNumber() != 92 || n.MassNumber() != 235 {
		r.log.Warnf("fission only supported for U-235, got Z=%d A=%d",
			n.AtomicNumber(), n.MassNumber())
		return 0, ErrUnsupportedNuclide
	}

	defect := (massU235 + massNeutron) - (massBa141 + massKr92 + 3*massNeutron)
	return r.release(defect, "fission")
}

// Fusion computes the energy released by fusing deuterium and tritium, in
// either argument order, into He-4 plus a neutron.
func (r *Reactor) Fusion(a, b *atomic.Nucleus) (float64, error) {
	isD := isNuclide(a, 1, 2) || isNuclide(b, 1, 2)
	isT := isNuclide(a, 1, 3) || isNuclide(b, 1, 3)
	if !isD || !isT {
		r.log.Warnf("fusion only supported for D-T, got Z=%d A=%d and Z=%d A=%d",
			a.AtomicNumber(), a.MassNumber(), b.AtomicNumber(), b.MassNumber())
		return 0, ErrUnsupportedNuclide
	}

	defect := (massD + massT) - (massHe4 + massNeutron)
	return r.release(defect, "fusion")
}

// BindingEnergyPerNucleon approximates the binding energy per nucleon in eV
// using the semi-empirical mass formula.
func (r *Reactor) BindingEnergyPerNucleon(atomicNumber, massNumber int) float64 {
	if massNumber <= 0 {
		return 0
	}
	beMeV := units.BindingEnergy(massNumber, atomicNumber)
	return beMeV / float64(massNumber) * 1e6
}

// release converts a mass defect in amu to eV, guarding against
// non-physical results.
func (r *Reactor) release(defectAMU float64, channel string) (float64, error) {
	if defectAMU <= 0 {
		r.log.Warnf("%s produced a non-positive mass defect (%e amu)", channel, defectAMU)
		return 0, ErrNoMassDefect
	}

	joules := units.AMUToKg(defectAMU) * units.SpeedOfLight * units.SpeedOfLight
	ev := units.JoulesToEV(joules)
	r.log.Infof("%s: mass defect %e amu, released %e eV", channel, defectAMU, ev)
	return ev, nil
}

func isNuclide(n *atomic.Nucleus, z, a int) bool {
	return n.AtomicNumber() == z && n.MassNumber() == a
}
