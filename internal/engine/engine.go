// Package engine orchestrates the simulation: it owns every atom and
// molecule, flattens their particles each tick, applies Coulomb forces and
// integrates motion. It is the sole mutation point for kinematic state.
package engine

import (
	"errors"
	"sync"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/chem"
	"github.com/san-kum/atomica/internal/coulomb"
	"github.com/san-kum/atomica/internal/logging"
	"github.com/san-kum/atomica/internal/nuclear"
	"github.com/san-kum/atomica/internal/orbital"
)

// ErrNonPositiveDt indicates a tick requested with dt <= 0.
var ErrNonPositiveDt = errors.New("engine: dt must be positive")

// Engine holds the flat atom list, the molecules, and the stateless physics
// sub-models. A single mutex serializes Add* calls against Tick so a UI
// thread can mutate the scene between frames.
type Engine struct {
	mu        sync.Mutex
	atoms     []*atomic.Atom
	molecules []*atomic.Molecule

	solver    *coulomb.Solver
	chemistry *chem.Calculator
	reactor   *nuclear.Reactor
	orbitals  *orbital.Model

	observers []Observer
	elapsed   float64
	log       logging.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithWorkers enables parallel force accumulation with the given worker
// count. Integration stays single-threaded.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.solver.Workers = n
		}
	}
}

// WithObserver registers an observer notified after every tick.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

func New(log logging.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logging.Nop{}
	}
	e := &Engine{
		solver:    coulomb.NewSolver(),
		chemistry: chem.NewCalculator(log),
		reactor:   nuclear.NewReactor(log),
		orbitals:  orbital.NewModel(log),
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddAtom appends the atom to the flat list. Callers are responsible for
// not registering the same atom twice.
func (e *Engine) AddAtom(a *atomic.Atom) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.atoms = append(e.atoms, a)
}

// AddMolecule appends the molecule and every atom it contains to the flat
// list. An atom registered through a molecule therefore appears in both the
// molecule's list and the flat list; that duplication is intentional and
// never deduplicated.
func (e *Engine) AddMolecule(m *atomic.Molecule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.molecules = append(e.molecules, m)
	e.atoms = append(e.atoms, m.Atoms()...)
}

// AddObserver registers an observer notified after every tick.
func (e *Engine) AddObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// Tick advances the simulation by dt seconds: flatten all particles, solve
// Coulomb forces once, integrate each particle with its force. Bond,
// nuclear and orbital events are never triggered here; they are explicit
// operations invoked by the caller.
func (e *Engine) Tick(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveDt
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	particles := e.flatten()
	forces := e.solver.Forces(particles)
	for i, p := range particles {
		p.Integrate(forces[i], dt)
	}
	e.elapsed += dt

	if len(e.observers) > 0 {
		snap := e.snapshotLocked(particles)
		for _, o := range e.observers {
			o.OnTick(snap)
		}
	}
	return nil
}

// flatten builds the per-tick particle sequence: for each atom in
// registration order, its nucleus followed by its electrons in addition
// order. Solver output indexing mirrors this order.
func (e *Engine) flatten() []*atomic.Particle {
	particles := make([]*atomic.Particle, 0, len(e.atoms)*2)
	for _, a := range e.atoms {
		particles = append(particles, &a.Nucleus().Particle)
		for _, el := range a.Electrons() {
			particles = append(particles, &el.Particle)
		}
	}
	return particles
}

// Atoms returns the flat atom list the engine simulates.
func (e *Engine) Atoms() []*atomic.Atom {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.atoms
}

// Molecules returns the registered molecules.
func (e *Engine) Molecules() []*atomic.Molecule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.molecules
}

// Time returns the elapsed simulated time in seconds.
func (e *Engine) Time() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// Chemistry exposes the bond calculator for explicit bonding operations.
func (e *Engine) Chemistry() *chem.Calculator { return e.chemistry }

// Reactor exposes the nuclear reaction model for explicit triggers.
func (e *Engine) Reactor() *nuclear.Reactor { return e.reactor }

// Orbitals exposes the orbital transition model for explicit triggers.
func (e *Engine) Orbitals() *orbital.Model { return e.orbitals }
