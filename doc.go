// Package vector implements a generic growable array with manual capacity
// management.
//
// # Overview
//
// A Vector stores its elements in the first Len() slots of a single
// owned Buffer of Cap() slots. Appending to a full vector allocates a new
// buffer of twice the capacity (1 for an empty vector), moves the
// elements across and releases the old one, so N appends from empty cost
// O(N) element moves and O(log N) reallocations.
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3)  // capacity 3
//	v.Append(4)              // grows to capacity 6
//	v.InsertAt(1, 9)         // [1 9 2 3 4]
//	v.EraseAt(0)             // [9 2 3 4]
//
//	x, err := v.At(10)       // checked: *OutOfRangeError
//	y := v.Get(0)            // unchecked
//
//	w := vector.NewReserved[string](vector.Reserve(64))
//
// # Ownership
//
// A Vector exclusively owns its Buffer. Clone and CopyFrom make deep
// copies (Clone's capacity equals the source's length). Take transfers a
// vector's buffer and leaves the source empty. MoveFrom swaps, so the
// source ends up holding the destination's former contents. Vectors must
// not be copied by value.
//
// # Cursors
//
// Insert and Erase take a Cursor obtained from Begin, End or CursorAt.
// Any operation that changes the size or the storage invalidates all
// cursors of that vector; using a stale cursor panics. InsertAt and
// EraseAt are index-based equivalents.
//
// # Errors and Preconditions
//
// The checked accessors At and SetAt return *OutOfRangeError, which
// matches ErrOutOfRange under errors.Is. Precondition violations such as
// PopBack on an empty vector, negative sizes or stale cursors are
// programming errors and panic.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. Callers sharing a vector across
// goroutines must synchronize all access themselves.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("size=%d cap=%d reallocations=%d\n", m.Size, m.Capacity, m.Reallocations)
package vector
