package vector

import "fmt"

// Buffer owns a fixed-capacity block of T storage and nothing else.
// It never grows: a Vector replaces its Buffer wholesale by allocating a
// new one and swapping. Exactly one Buffer references a given region at
// a time; ownership moves only through Swap.
//
// Allocation failure is not recovered: the Go runtime aborts the process
// when memory cannot be obtained.
type Buffer[T any] struct {
	slots    []T  // backing storage, len == cap == capacity
	released bool // set by Release, cleared by Allocate
}

// NewBuffer creates a Buffer owning storage for capacity elements.
// A capacity of 0 allocates nothing.
func NewBuffer[T any](capacity int) *Buffer[T] {
	b := &Buffer[T]{}
	b.Allocate(capacity)
	return b
}

// Allocate drops any region the buffer owns and takes ownership of a fresh
// one sized for capacity elements. Slots hold the zero value of T.
// Panics if capacity is negative.
func (b *Buffer[T]) Allocate(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("vector: negative buffer capacity %d", capacity))
	}
	b.released = false
	if capacity == 0 {
		b.slots = nil
		return
	}
	b.slots = make([]T, capacity)
}

// Release drops the owned region. Any subsequent Slot or View will panic
// until the buffer is allocated again.
func (b *Buffer[T]) Release() {
	b.slots = nil
	b.released = true
}

// Released reports whether Release was called since the last Allocate.
func (b *Buffer[T]) Released() bool {
	return b.released
}

// Swap exchanges the owned regions of b and other in O(1) without
// touching any element.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.released, other.released = other.released, b.released
}

// Cap returns the number of element slots owned by the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Slot returns a pointer to slot i. No logical bounds are checked; the
// runtime still rejects i outside [0, Cap()).
func (b *Buffer[T]) Slot(i int) *T {
	b.panicIfReleased()
	return &b.slots[i]
}

// View returns the first n slots as a slice aliasing the buffer. The
// slice's capacity is clipped to n so appends never write into the buffer.
func (b *Buffer[T]) View(n int) []T {
	b.panicIfReleased()
	return b.slots[:n:n]
}

// panicIfReleased panics if the buffer has been released.
func (b *Buffer[T]) panicIfReleased() {
	if b.released {
		panic("vector: buffer use after Release()")
	}
}
