// Package atomic defines the particle-level data model of the sandbox:
// nuclei, electrons, the atoms that own them, and the bonds and molecules
// built on top.
package atomic

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/units"
)

// Kind discriminates the two concrete particle variants.
type Kind int

const (
	KindNucleus Kind = iota
	KindElectron
)

func (k Kind) String() string {
	switch k {
	case KindNucleus:
		return "nucleus"
	case KindElectron:
		return "electron"
	default:
		return "unknown"
	}
}

// Particle is the shared kinematic record of every simulated entity.
type Particle struct {
	Kind     Kind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Mass     float64 // kg
	Charge   float64 // C
}

func newParticle(kind Kind, position, velocity mgl64.Vec3, mass, charge float64) (Particle, error) {
	if mass <= 0 {
		return Particle{}, ErrNonPositiveMass
	}
	return Particle{
		Kind:     kind,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Charge:   charge,
	}, nil
}

// Integrate advances the particle by one semi-implicit Euler step: velocity
// is updated from the applied force first, then position from the new
// velocity. Mutates the particle in place.
func (p *Particle) Integrate(force mgl64.Vec3, dt float64) {
	acc := force.Mul(1.0 / p.Mass)
	p.Velocity = p.Velocity.Add(acc.Mul(dt))
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}

// Nucleus is a particle carrying the proton and nucleon counts.
type Nucleus struct {
	Particle
	atomicNumber int
	massNumber   int
}

// NewNucleus builds a nucleus at rest. Charge is Z elementary charges and
// mass is the sum of its proton and neutron rest masses.
func NewNucleus(atomicNumber, massNumber int, position mgl64.Vec3) (*Nucleus, error) {
	if atomicNumber < 0 || massNumber < atomicNumber {
		return nil, ErrInvalidNuclide
	}
	mass := float64(atomicNumber)*units.ProtonMass +
		float64(massNumber-atomicNumber)*units.NeutronMass
	charge := float64(atomicNumber) * units.ElementaryCharge

	p, err := newParticle(KindNucleus, position, mgl64.Vec3{}, mass, charge)
	if err != nil {
		return nil, err
	}
	return &Nucleus{Particle: p, atomicNumber: atomicNumber, massNumber: massNumber}, nil
}

func (n *Nucleus) AtomicNumber() int { return n.atomicNumber }
func (n *Nucleus) MassNumber() int   { return n.massNumber }

// Electron is a particle on a discrete orbital level. Mass and charge are
// the physical electron constants regardless of the host atom.
type Electron struct {
	Particle
	level int
}

// NewElectron builds an electron at rest on the given orbital level.
func NewElectron(position mgl64.Vec3, level int) *Electron {
	p, _ := newParticle(KindElectron, position, mgl64.Vec3{},
		units.ElectronMass, -units.ElementaryCharge)
	return &Electron{Particle: p, level: level}
}

// Level returns the principal quantum number of the electron's orbital.
func (e *Electron) Level() int { return e.level }

// SetLevel replaces the orbital level. Only the orbital model calls this.
func (e *Electron) SetLevel(level int) { e.level = level }
