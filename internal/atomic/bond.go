package atomic

// BondType classifies a chemical bond.
type BondType int

const (
	Single BondType = iota
	Double
	Triple
	Ionic
	Metallic
	Hydrogen
)

func (t BondType) String() string {
	switch t {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Ionic:
		return "ionic"
	case Metallic:
		return "metallic"
	case Hydrogen:
		return "hydrogen"
	default:
		return "unknown"
	}
}

// Bond associates two atoms with a type and an energy. The bond does not own
// its atoms; their lifetime is governed by the engine or a molecule.
type Bond struct {
	atom1  *Atom
	atom2  *Atom
	typ    BondType
	energy float64 // eV
}

func NewBond(atom1, atom2 *Atom, typ BondType, energy float64) *Bond {
	return &Bond{atom1: atom1, atom2: atom2, typ: typ, energy: energy}
}

func (b *Bond) Atom1() *Atom    { return b.atom1 }
func (b *Bond) Atom2() *Atom    { return b.atom2 }
func (b *Bond) Type() BondType  { return b.typ }
func (b *Bond) Energy() float64 { return b.energy }

// SetEnergy replaces the bond energy in eV.
func (b *Bond) SetEnergy(energy float64) { b.energy = energy }
