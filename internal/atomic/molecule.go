package atomic

// Molecule groups atoms and the bonds between them. Atom references are
// shared with the engine's flat list, not owned exclusively. No validation
// ties bonds to the molecule's own atom list.
type Molecule struct {
	atoms []*Atom
	bonds []*Bond
}

func NewMolecule() *Molecule {
	return &Molecule{}
}

func (m *Molecule) AddAtom(a *Atom) {
	m.atoms = append(m.atoms, a)
}

func (m *Molecule) AddBond(b *Bond) {
	m.bonds = append(m.bonds, b)
}

func (m *Molecule) Atoms() []*Atom { return m.atoms }
func (m *Molecule) Bonds() []*Bond { return m.bonds }
