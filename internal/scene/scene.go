// Package scene turns a declarative config into a populated engine.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/config"
	"github.com/san-kum/atomica/internal/engine"
	"github.com/san-kum/atomica/internal/logging"
)

// Build constructs an engine holding the atoms and molecules the config
// describes. Molecule bonds are classified by the engine's bond calculator.
func Build(cfg *config.Config, log logging.Logger, opts ...engine.Option) (*engine.Engine, error) {
	if cfg.Workers > 1 {
		opts = append(opts, engine.WithWorkers(cfg.Workers))
	}
	eng := engine.New(log, opts...)

	for i, spec := range cfg.Atoms {
		a, err := buildAtom(spec)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		eng.AddAtom(a)
	}

	for _, mspec := range cfg.Molecules {
		m, err := buildMolecule(mspec, eng)
		if err != nil {
			return nil, fmt.Errorf("molecule %q: %w", mspec.Name, err)
		}
		eng.AddMolecule(m)
	}

	return eng, nil
}

func buildAtom(spec config.AtomSpec) (*atomic.Atom, error) {
	pos := mgl64.Vec3{spec.Position[0], spec.Position[1], spec.Position[2]}
	return atomic.NewAtom(spec.AtomicNumber, spec.MassNumber, pos)
}

func buildMolecule(spec config.MoleculeSpec, eng *engine.Engine) (*atomic.Molecule, error) {
	m := atomic.NewMolecule()

	atoms := make([]*atomic.Atom, 0, len(spec.Atoms))
	for i, aspec := range spec.Atoms {
		a, err := buildAtom(aspec)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		atoms = append(atoms, a)
		m.AddAtom(a)
	}

	for _, bspec := range spec.Bonds {
		if bspec.A < 0 || bspec.A >= len(atoms) || bspec.B < 0 || bspec.B >= len(atoms) {
			return nil, fmt.Errorf("bond indices %d-%d out of range", bspec.A, bspec.B)
		}
		m.AddBond(eng.Chemistry().Bind(atoms[bspec.A], atoms[bspec.B]))
	}

	return m, nil
}
