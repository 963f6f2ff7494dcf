package vector

import (
	"fmt"
	"iter"
)

// Vector is a growable array of T with manual capacity management.
// The first Len() slots of its Buffer hold live elements; slots in
// [Len(), Cap()) are never read.
//
// A Vector must not be copied by value once used: copies would share the
// Buffer. Use Clone or CopyFrom for an independent copy and Take or
// MoveFrom to transfer ownership.
type Vector[T any] struct {
	_       noCopy
	storage Buffer[T]
	size    int

	// gen changes whenever the size or the backing storage changes;
	// cursors carrying an older gen are stale.
	gen uint64

	reallocs int
	moves    int
}

// New returns an empty vector. Nothing is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector holding n zero values of T, with capacity n.
func NewSized[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a vector holding n copies of value, with capacity n.
func NewFilled[T any](n int, value T) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	v := &Vector[T]{}
	v.storage.Allocate(n)
	s := v.storage.View(n)
	for i := range s {
		s[i] = value
	}
	v.size = n
	return v
}

// Of returns a vector holding items in order, with capacity len(items).
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	v.storage.Allocate(len(items))
	copy(v.storage.View(len(items)), items)
	v.size = len(items)
	return v
}

// Clone returns an independent copy of v. The copy's capacity equals
// v.Len(), not v.Cap(). Elements are copied by assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.storage.Allocate(v.size)
	dst := c.storage.View(v.size)
	for i, x := range v.Slice() {
		dst[i] = x
	}
	c.size = v.size
	return c
}

// Take transfers src's buffer, size and capacity into a new vector.
// src is left empty with no buffer.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.Swap(src)
	return v
}

// CopyFrom replaces v's contents with an independent copy of src.
// The copy is built first and swapped in, so v is untouched if copying
// panics. Assigning a vector to itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// MoveFrom transfers src's contents into v by swapping: src receives v's
// former contents rather than becoming empty. Use Take when the source
// must end up empty. Moving a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Swap exchanges the contents of v and other in O(1). Cursors of both
// vectors are invalidated. Metrics stay with each vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
	v.gen++
	other.gen++
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.storage.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns the element at index i without checking i against Len().
// Reading past Len() returns an unspecified value; past Cap() the
// runtime panics.
func (v *Vector[T]) Get(i int) T {
	return *v.storage.Slot(i)
}

// Set stores x at index i without checking i against Len().
func (v *Vector[T]) Set(i int, x T) {
	*v.storage.Slot(i) = x
}

// Ref returns a pointer to the slot at index i without checking i against
// Len(). The pointer is only meaningful until the next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return v.storage.Slot(i)
}

// At returns the element at index i, or an *OutOfRangeError if i is not
// in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &OutOfRangeError{Index: i, Size: v.size}
	}
	return v.storage.slots[i], nil
}

// SetAt stores x at index i, or returns an *OutOfRangeError if i is not
// in [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return &OutOfRangeError{Index: i, Size: v.size}
	}
	v.storage.slots[i] = x
	return nil
}

// Front returns the first element. Panics if the vector is empty.
func (v *Vector[T]) Front() T {
	v.panicIfEmpty("Front")
	return v.storage.slots[0]
}

// Back returns the last element. Panics if the vector is empty.
func (v *Vector[T]) Back() T {
	v.panicIfEmpty("Back")
	return v.storage.slots[v.size-1]
}

// Slice returns the live elements as a slice aliasing the vector's
// buffer. Writes through it are visible in v; it goes stale after any
// reallocation.
func (v *Vector[T]) Slice() []T {
	if v.size == 0 {
		return nil
	}
	return v.storage.View(v.size)
}

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.storage.slots[i]) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.storage.slots[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.storage.slots[:v.size])
}

func (v *Vector[T]) panicIfEmpty(op string) {
	if v.size == 0 {
		panic("vector: " + op + " on empty vector")
	}
}

// noCopy makes go vet's copylocks check flag Vector values copied after
// first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
