package coulomb

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
)

// forcesParallel splits the outer pair index across workers, each with a
// private accumulation buffer, and reduces behind a barrier. Positions and
// charges are read-only here; integration stays with the caller.
func (s *Solver) forcesParallel(particles []*atomic.Particle) []mgl64.Vec3 {
	n := len(particles)
	workers := s.Workers
	if workers > n {
		workers = n
	}

	buffers := make([][]mgl64.Vec3, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := make([]mgl64.Vec3, n)
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					f, ok := s.pairForce(particles[i], particles[j])
					if !ok {
						continue
					}
					local[i] = local[i].Add(f)
					local[j] = local[j].Sub(f)
				}
			}
			buffers[w] = local
		}(w)
	}
	wg.Wait()

	forces := make([]mgl64.Vec3, n)
	for _, local := range buffers {
		for i := range forces {
			forces[i] = forces[i].Add(local[i])
		}
	}
	return forces
}
