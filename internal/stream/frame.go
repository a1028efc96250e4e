package stream

import (
	"encoding/json"

	"github.com/san-kum/atomica/internal/engine"
)

// Frame is the wire format of one snapshot.
type Frame struct {
	Time          float64         `json:"time"`
	KineticEnergy float64         `json:"kinetic_energy"`
	Particles     []ParticleFrame `json:"particles"`
}

// ParticleFrame carries one particle's renderable state.
type ParticleFrame struct {
	Kind     string     `json:"kind"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Charge   float64    `json:"charge"`
}

func marshalFrame(snap engine.Snapshot) ([]byte, error) {
	frame := Frame{
		Time:          snap.Time,
		KineticEnergy: snap.KineticEnergy,
		Particles:     make([]ParticleFrame, len(snap.Particles)),
	}
	for i, p := range snap.Particles {
		frame.Particles[i] = ParticleFrame{
			Kind:     p.Kind.String(),
			Position: [3]float64{p.Position.X(), p.Position.Y(), p.Position.Z()},
			Velocity: [3]float64{p.Velocity.X(), p.Velocity.Y(), p.Velocity.Z()},
			Charge:   p.Charge,
		}
	}
	return json.Marshal(frame)
}
