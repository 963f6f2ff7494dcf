package cli

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/script"
)

// telemetry exports replay statistics in Prometheus text format.
type telemetry struct {
	set *metrics.Set
}

func newTelemetry(snapshot func() vector.VectorMetrics) *telemetry {
	set := metrics.NewSet()
	set.NewGauge("vectrace_vector_size", func() float64 {
		return float64(snapshot().Size)
	})
	set.NewGauge("vectrace_vector_capacity", func() float64 {
		return float64(snapshot().Capacity)
	})
	set.NewGauge("vectrace_vector_utilization", func() float64 {
		return snapshot().Utilization
	})
	return &telemetry{set: set}
}

// observe records one replayed step.
func (t *telemetry) observe(s script.Step) {
	t.set.GetOrCreateCounter(fmt.Sprintf(`vectrace_ops_total{op=%q}`, s.Instr.Op)).Inc()
	t.set.GetOrCreateCounter("vectrace_element_moves_total").Add(s.Moves)
	if s.Reallocated {
		t.set.GetOrCreateCounter("vectrace_reallocations_total").Inc()
	}
}

func (t *telemetry) write(w io.Writer) {
	t.set.WritePrometheus(w)
}
