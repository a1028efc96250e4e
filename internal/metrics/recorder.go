package metrics

import "github.com/san-kum/atomica/internal/engine"

// Recorder is an engine observer that feeds a set of metrics and keeps the
// snapshot history for storage and plotting.
type Recorder struct {
	metrics   []Metric
	snapshots []engine.Snapshot
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{metrics: metrics}
}

func (r *Recorder) OnTick(snap engine.Snapshot) {
	for _, m := range r.metrics {
		m.Observe(snap)
	}
	r.snapshots = append(r.snapshots, snap)
}

// Snapshots returns the recorded tick history in order.
func (r *Recorder) Snapshots() []engine.Snapshot { return r.snapshots }

// Values collects the current metric values by name.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset clears the history and every metric.
func (r *Recorder) Reset() {
	r.snapshots = nil
	for _, m := range r.metrics {
		m.Reset()
	}
}
