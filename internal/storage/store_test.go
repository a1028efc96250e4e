package storage

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/engine"
)

func sampleSnapshots() []engine.Snapshot {
	mk := func(t float64, x float64) engine.Snapshot {
		return engine.Snapshot{
			Time:          t,
			KineticEnergy: t * 2,
			Particles: []engine.ParticleState{
				{Kind: atomic.KindNucleus, Position: mgl64.Vec3{x, 0, 0}},
				{Kind: atomic.KindElectron, Position: mgl64.Vec3{x, 0.5, 0}},
			},
		}
	}
	return []engine.Snapshot{mk(0.016, 0), mk(0.032, 1.25), mk(0.048, 2.5)}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	metrics := map[string]float64{"kinetic_energy": 4e-18}
	runID, err := store.Save("hydrogen", 0.016, 42, sampleSnapshots(), metrics)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Scene != "hydrogen" || meta.Seed != 42 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Steps != 3 || meta.Particles != 2 {
		t.Errorf("steps=%d particles=%d, expected 3/2", meta.Steps, meta.Particles)
	}
	if meta.Metrics["kinetic_energy"] != 4e-18 {
		t.Errorf("metrics not round-tripped: %v", meta.Metrics)
	}
}

func TestLoadTrajectory(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	runID, err := store.Save("hydrogen", 0.016, 0, sampleSnapshots(), nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	times, energies, rows, err := store.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("LoadTrajectory: %v", err)
	}
	if len(times) != 3 || len(energies) != 3 || len(rows) != 3 {
		t.Fatalf("lengths = %d/%d/%d, expected 3", len(times), len(energies), len(rows))
	}
	if math.Abs(times[1]-0.032)/0.032 > 1e-9 {
		t.Errorf("times[1] = %e", times[1])
	}
	// Two particles, three coordinates each.
	if len(rows[0]) != 6 {
		t.Errorf("expected 6 position columns, got %d", len(rows[0]))
	}
	if math.Abs(rows[2][0]-2.5)/2.5 > 1e-9 {
		t.Errorf("rows[2][0] = %e, expected 2.5", rows[2][0])
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if runs, err := store.List(); err != nil || len(runs) != 0 {
		t.Fatalf("empty store: runs=%v err=%v", runs, err)
	}

	if _, err := store.Save("hydrogen", 0.016, 0, sampleSnapshots(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("List should tolerate a missing base dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
