package vector

// Hint carries a requested capacity for NewReserved.
type Hint struct {
	capacity int
}

// Reserve returns a Hint requesting capacity slots.
//
//	v := vector.NewReserved[int](vector.Reserve(64))
func Reserve(capacity int) Hint {
	return Hint{capacity: capacity}
}

// Capacity returns the requested capacity.
func (h Hint) Capacity() int {
	return h.capacity
}

// NewReserved returns an empty vector whose capacity is at least
// h.Capacity().
func NewReserved[T any](h Hint) *Vector[T] {
	v := New[T]()
	v.Reserve(h.capacity)
	return v
}
