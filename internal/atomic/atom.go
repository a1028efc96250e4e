package atomic

import "github.com/go-gl/mathgl/mgl64"

// Atom aggregates one nucleus and its electrons. The atom's position is
// defined by the nucleus; electrons are carried rigidly when the atom moves.
type Atom struct {
	atomicNumber int
	massNumber   int
	nucleus      *Nucleus
	electrons    []*Electron
}

// NewAtom builds a neutral atom: one nucleus plus atomicNumber electrons,
// all on orbital level 1 and co-located with the nucleus.
func NewAtom(atomicNumber, massNumber int, position mgl64.Vec3) (*Atom, error) {
	nucleus, err := NewNucleus(atomicNumber, massNumber, position)
	if err != nil {
		return nil, err
	}

	electrons := make([]*Electron, 0, atomicNumber)
	for i := 0; i < atomicNumber; i++ {
		electrons = append(electrons, NewElectron(position, 1))
	}

	return &Atom{
		atomicNumber: atomicNumber,
		massNumber:   massNumber,
		nucleus:      nucleus,
		electrons:    electrons,
	}, nil
}

func (a *Atom) AtomicNumber() int      { return a.atomicNumber }
func (a *Atom) MassNumber() int        { return a.massNumber }
func (a *Atom) Nucleus() *Nucleus      { return a.nucleus }
func (a *Atom) Electrons() []*Electron { return a.electrons }

// Position returns the nucleus position.
func (a *Atom) Position() mgl64.Vec3 {
	return a.nucleus.Position
}

// SetPosition moves the nucleus to position and shifts every electron by the
// same delta, preserving electron-to-nucleus offsets.
func (a *Atom) SetPosition(position mgl64.Vec3) {
	delta := position.Sub(a.nucleus.Position)
	a.nucleus.Position = position
	for _, e := range a.electrons {
		e.Position = e.Position.Add(delta)
	}
}

// AddElectron appends an electron to the atom (e.g. electron capture).
func (a *Atom) AddElectron(e *Electron) {
	a.electrons = append(a.electrons, e)
}

// RemoveElectron removes the electron by identity, preserving the order of
// the remaining electrons. Returns false if the electron is not present.
func (a *Atom) RemoveElectron(e *Electron) bool {
	for i, cur := range a.electrons {
		if cur == e {
			a.electrons = append(a.electrons[:i], a.electrons[i+1:]...)
			return true
		}
	}
	return false
}
