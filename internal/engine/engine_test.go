package engine

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/logging"
)

func mustAtom(t *testing.T, z, a int, pos mgl64.Vec3) *atomic.Atom {
	t.Helper()
	atom, err := atomic.NewAtom(z, a, pos)
	if err != nil {
		t.Fatalf("NewAtom(%d, %d): %v", z, a, err)
	}
	return atom
}

func TestAddMoleculeDoubleRegistration(t *testing.T) {
	e := New(logging.Nop{})

	h1 := mustAtom(t, 1, 1, mgl64.Vec3{})
	h2 := mustAtom(t, 1, 1, mgl64.Vec3{1, 0, 0})

	m := atomic.NewMolecule()
	m.AddAtom(h1)
	m.AddAtom(h2)
	m.AddBond(e.Chemistry().Bind(h1, h2))

	e.AddMolecule(m)

	if len(e.Molecules()) != 1 {
		t.Fatalf("expected 1 molecule, got %d", len(e.Molecules()))
	}
	// The molecule's atoms appear in both the molecule's list and the flat
	// list; no silent deduplication.
	if len(m.Atoms()) != 2 {
		t.Errorf("molecule should keep its 2 atoms, got %d", len(m.Atoms()))
	}
	if len(e.Atoms()) != 2 {
		t.Errorf("flat list should hold the molecule's 2 atoms, got %d", len(e.Atoms()))
	}
	if e.Atoms()[0] != h1 || e.Atoms()[1] != h2 {
		t.Error("flat list should alias the molecule's atoms in order")
	}
}

func TestTickRejectsNonPositiveDt(t *testing.T) {
	e := New(logging.Nop{})
	for _, dt := range []float64{0, -0.016} {
		if err := e.Tick(dt); !errors.Is(err, ErrNonPositiveDt) {
			t.Errorf("Tick(%e): expected ErrNonPositiveDt, got %v", dt, err)
		}
	}
}

func TestTickSeparatesLikeCharges(t *testing.T) {
	e := New(logging.Nop{})

	// Two bare nuclei (electrons stripped) repel; verify the integrator
	// actually moves them apart.
	a := mustAtom(t, 1, 1, mgl64.Vec3{})
	b := mustAtom(t, 1, 1, mgl64.Vec3{1, 0, 0})
	for _, atom := range []*atomic.Atom{a, b} {
		for _, el := range append([]*atomic.Electron(nil), atom.Electrons()...) {
			atom.RemoveElectron(el)
		}
	}

	e.AddAtom(a)
	e.AddAtom(b)

	before := b.Position().X() - a.Position().X()
	if err := e.Tick(0.5); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	after := b.Position().X() - a.Position().X()

	if after <= before {
		t.Errorf("like charges should separate: gap %e -> %e", before, after)
	}
	if e.Time() != 0.5 {
		t.Errorf("elapsed = %e, expected 0.5", e.Time())
	}
}

func TestTickFlattenOrder(t *testing.T) {
	e := New(logging.Nop{})
	he := mustAtom(t, 2, 4, mgl64.Vec3{})
	h := mustAtom(t, 1, 1, mgl64.Vec3{3, 0, 0})
	e.AddAtom(he)
	e.AddAtom(h)

	snap := e.Snapshot()

	// he nucleus, 2 electrons, h nucleus, 1 electron.
	wantKinds := []atomic.Kind{
		atomic.KindNucleus, atomic.KindElectron, atomic.KindElectron,
		atomic.KindNucleus, atomic.KindElectron,
	}
	if len(snap.Particles) != len(wantKinds) {
		t.Fatalf("expected %d particles, got %d", len(wantKinds), len(snap.Particles))
	}
	for i, want := range wantKinds {
		if snap.Particles[i].Kind != want {
			t.Errorf("particle %d kind = %v, expected %v", i, snap.Particles[i].Kind, want)
		}
	}
}

func TestObserversNotifiedEachTick(t *testing.T) {
	var snaps []Snapshot
	e := New(logging.Nop{}, WithObserver(ObserverFunc(func(s Snapshot) {
		snaps = append(snaps, s)
	})))
	e.AddAtom(mustAtom(t, 1, 1, mgl64.Vec3{}))

	for i := 0; i < 3; i++ {
		if err := e.Tick(0.016); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	if snaps[2].Time <= snaps[0].Time {
		t.Error("snapshot times should increase")
	}
	if len(snaps[0].Particles) != 2 {
		t.Errorf("hydrogen snapshot should hold 2 particles, got %d", len(snaps[0].Particles))
	}
}

func TestTickDoesNotTriggerReactionsOrJumps(t *testing.T) {
	e := New(logging.Nop{})
	u := mustAtom(t, 92, 235, mgl64.Vec3{})
	e.AddAtom(u)

	levelsBefore := make([]int, len(u.Electrons()))
	for i, el := range u.Electrons() {
		levelsBefore[i] = el.Level()
	}

	if err := e.Tick(0.016); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if u.Nucleus().AtomicNumber() != 92 || u.Nucleus().MassNumber() != 235 {
		t.Error("tick must not transmute nuclei")
	}
	for i, el := range u.Electrons() {
		if el.Level() != levelsBefore[i] {
			t.Errorf("tick changed electron %d level", i)
		}
	}
	if len(e.Atoms()) != 1 {
		t.Errorf("tick must not create or destroy atoms, got %d", len(e.Atoms()))
	}
}
