package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
)

// ParticleState is a value copy of one particle's kinematic state, safe to
// hand to observers while the engine keeps mutating the originals.
type ParticleState struct {
	Kind     atomic.Kind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Mass     float64
	Charge   float64
}

// Snapshot captures the engine state at the end of a tick for rendering,
// metrics and streaming.
type Snapshot struct {
	Time          float64
	Particles     []ParticleState
	KineticEnergy float64
}

// Observer is notified once per tick with a snapshot of the new state.
type Observer interface {
	OnTick(snap Snapshot)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(snap Snapshot)

func (f ObserverFunc) OnTick(snap Snapshot) { f(snap) }

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(e.flatten())
}

func (e *Engine) snapshotLocked(particles []*atomic.Particle) Snapshot {
	snap := Snapshot{
		Time:      e.elapsed,
		Particles: make([]ParticleState, len(particles)),
	}
	for i, p := range particles {
		snap.Particles[i] = ParticleState{
			Kind:     p.Kind,
			Position: p.Position,
			Velocity: p.Velocity,
			Mass:     p.Mass,
			Charge:   p.Charge,
		}
		v2 := p.Velocity.Dot(p.Velocity)
		snap.KineticEnergy += 0.5 * p.Mass * v2
	}
	return snap
}
