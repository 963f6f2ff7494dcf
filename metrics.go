package vector

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if nothing is allocated.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times the vector replaced its buffer to
// grow (Append/Insert on a full vector, a growing Reserve or Resize).
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// ElementMoves returns how many element relocations growth and shifting
// have performed: elements carried into a new buffer plus elements shifted
// by Insert and Erase.
func (v *Vector[T]) ElementMoves() int {
	return v.moves
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Len(),
		Capacity:      v.Cap(),
		Utilization:   v.Utilization(),
		Reallocations: v.Reallocations(),
		ElementMoves:  v.ElementMoves(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Utilization   float64 // Ratio of Size to Capacity (0.0-1.0)
	Reallocations int     // Buffer replacements caused by growth
	ElementMoves  int     // Elements relocated or shifted
}
