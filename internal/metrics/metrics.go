// Package metrics observes per-tick snapshots and reduces them to scalar
// diagnostics for run summaries.
package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/engine"
)

// Metric accumulates an observable over a run.
type Metric interface {
	Name() string
	Observe(snap engine.Snapshot)
	Value() float64
	Reset()
}

// KineticEnergy reports the mean total kinetic energy across ticks, joules.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(snap engine.Snapshot) {
	k.total += snap.KineticEnergy
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Momentum reports the norm of the total momentum at the last tick, kg*m/s.
type Momentum struct {
	last float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(snap engine.Snapshot) {
	var total mgl64.Vec3
	for _, p := range snap.Particles {
		total = total.Add(p.Velocity.Mul(p.Mass))
	}
	m.last = total.Len()
}

func (m *Momentum) Value() float64 { return m.last }
func (m *Momentum) Reset()         { m.last = 0 }

// MaxSpeed reports the fastest particle speed seen across the run, m/s.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(snap engine.Snapshot) {
	for _, p := range snap.Particles {
		m.max = math.Max(m.max, p.Velocity.Len())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
