// Package coulomb computes pairwise electrostatic forces over a flat
// particle list.
package coulomb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/units"
)

const (
	// DefaultEpsilon is the singularity guard: pairs closer than this
	// contribute no force at all.
	DefaultEpsilon = 1e-9

	// parallelThreshold is the particle count below which the worker pool
	// is not worth spinning up.
	parallelThreshold = 64
)

// Solver accumulates Coulomb forces over every unordered particle pair.
// The algorithm is O(N^2) with no spatial partitioning; the sandbox targets
// tens to low hundreds of particles.
type Solver struct {
	Epsilon float64
	// Workers > 1 splits the pair loop across goroutines. The reduction
	// sums in a different order than the serial loop, so results agree
	// with it only to floating-point rounding.
	Workers int
}

func NewSolver() *Solver {
	return &Solver{Epsilon: DefaultEpsilon, Workers: 1}
}

// Forces returns one total force per input particle, in input order.
// Coincident pairs (|r| < Epsilon) are skipped entirely.
func (s *Solver) Forces(particles []*atomic.Particle) []mgl64.Vec3 {
	n := len(particles)
	if s.Workers > 1 && n >= parallelThreshold {
		return s.forcesParallel(particles)
	}

	forces := make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f, ok := s.pairForce(particles[i], particles[j])
			if !ok {
				continue
			}
			forces[i] = forces[i].Add(f)
			forces[j] = forces[j].Sub(f) // Newton's third law
		}
	}
	return forces
}

// pairForce computes the force exerted on a by b. ok is false when the pair
// is within the singularity guard.
func (s *Solver) pairForce(a, b *atomic.Particle) (mgl64.Vec3, bool) {
	r := a.Position.Sub(b.Position)
	dist := r.Len()
	if dist < s.Epsilon {
		return mgl64.Vec3{}, false
	}

	// F = k_e * q_a * q_b / r^2, along the separation axis. Same-sign
	// charges repel, opposite signs attract.
	magnitude := units.CoulombConstant * a.Charge * b.Charge / (dist * dist)
	return r.Mul(magnitude / dist), true
}
