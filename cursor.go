package vector

import "fmt"

// Cursor addresses a position in [Begin(), End()] of one vector.
//
// A cursor is bound to the vector that produced it and to that vector's
// current layout. Any operation that changes the size or the backing
// storage (Append, Insert, Erase, PopBack, Resize, Clear, a growing
// Reserve, Swap and the assignments) invalidates every outstanding
// cursor; using a stale cursor panics. Cursors are comparable with ==.
type Cursor[T any] struct {
	v     *Vector[T]
	gen   uint64
	index int
}

// Begin returns a cursor to the first element (End() if empty).
func (v *Vector[T]) Begin() Cursor[T] {
	return v.cursor(0)
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return v.cursor(v.size)
}

// CursorAt returns a cursor to index i. Panics if i is not in [0, Len()].
func (v *Vector[T]) CursorAt(i int) Cursor[T] {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: cursor position %d outside [0, %d]", i, v.size))
	}
	return v.cursor(i)
}

func (v *Vector[T]) cursor(i int) Cursor[T] {
	return Cursor[T]{v: v, gen: v.gen, index: i}
}

// checkCursor panics unless c is a live cursor of v. allowEnd admits
// c == End().
func (v *Vector[T]) checkCursor(c Cursor[T], op string, allowEnd bool) {
	switch {
	case c.v != v:
		panic("vector: " + op + " with a cursor from another vector")
	case c.gen != v.gen:
		panic("vector: " + op + " with a stale cursor")
	}
	limit := v.size
	if allowEnd {
		limit++
	}
	if c.index < 0 || c.index >= limit {
		panic(fmt.Sprintf("vector: %s with cursor position %d outside the vector (size %d)", op, c.index, v.size))
	}
}

// Index returns the position the cursor addresses.
func (c Cursor[T]) Index() int {
	return c.index
}

// Valid reports whether the cursor is live and addresses [Begin(), End()].
func (c Cursor[T]) Valid() bool {
	return c.v != nil && c.gen == c.v.gen && c.index >= 0 && c.index <= c.v.size
}

// Get returns the element under the cursor.
// Panics if the cursor is stale or at End().
func (c Cursor[T]) Get() T {
	c.mustDeref("Get")
	return c.v.storage.slots[c.index]
}

// Set stores x under the cursor. It does not invalidate cursors.
// Panics if the cursor is stale or at End().
func (c Cursor[T]) Set(x T) {
	c.mustDeref("Set")
	c.v.storage.slots[c.index] = x
}

// Next returns a cursor to the following position. Moving past End()
// yields an invalid cursor.
func (c Cursor[T]) Next() Cursor[T] {
	c.index++
	return c
}

// Prev returns a cursor to the preceding position.
func (c Cursor[T]) Prev() Cursor[T] {
	c.index--
	return c
}

func (c Cursor[T]) mustDeref(op string) {
	if c.v == nil {
		panic("vector: Cursor." + op + " on a zero cursor")
	}
	c.v.checkCursor(c, "Cursor."+op, false)
}
