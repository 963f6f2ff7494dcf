package vector

import "fmt"

// grownCapacity returns the capacity a full vector grows to.
func grownCapacity(capacity int) int {
	return max(capacity*2, 1)
}

// Reserve ensures Cap() >= newCapacity. If the vector must grow, a buffer
// of exactly newCapacity slots is allocated and the live elements are
// moved into it in order. Reserve never shrinks.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity <= v.Cap() {
		return
	}
	v.relocate(newCapacity)
}

// relocate moves the live elements into a fresh buffer of capacity slots
// and releases the old one. size is unchanged.
func (v *Vector[T]) relocate(capacity int) {
	var next Buffer[T]
	next.Allocate(capacity)
	copy(next.View(v.size), v.storage.slots[:v.size])
	v.storage.Swap(&next)
	next.Release()

	v.reallocs++
	v.moves += v.size
	v.gen++
}

// Append adds x after the last element, doubling the capacity (minimum 1)
// when the vector is full. Equivalent to Insert(End(), x).
func (v *Vector[T]) Append(x T) {
	v.insert(v.size, x)
}

// Insert places x before the element at pos and returns a cursor to it.
// pos may be End(). All outstanding cursors, including pos, are
// invalidated. Panics if pos is stale or belongs to another vector.
func (v *Vector[T]) Insert(pos Cursor[T], x T) Cursor[T] {
	v.checkCursor(pos, "Insert", true)
	return v.cursor(v.insert(pos.index, x))
}

// InsertAt places x at index i, shifting later elements toward the tail,
// and returns i. Panics if i is not in [0, Len()].
func (v *Vector[T]) InsertAt(i int, x T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: InsertAt position %d outside [0, %d]", i, v.size))
	}
	return v.insert(i, x)
}

func (v *Vector[T]) insert(i int, x T) int {
	if v.size < v.Cap() {
		// copy has memmove semantics, so the overlapping shift toward
		// the tail is safe.
		s := v.storage.View(v.size + 1)
		copy(s[i+1:], s[i:v.size])
		s[i] = x
		v.moves += v.size - i
	} else {
		capacity := grownCapacity(v.Cap())
		var next Buffer[T]
		next.Allocate(capacity)
		dst := next.View(v.size + 1)
		copy(dst, v.storage.slots[:i])
		dst[i] = x
		copy(dst[i+1:], v.storage.slots[i:v.size])
		v.storage.Swap(&next)
		next.Release()

		v.reallocs++
		v.moves += v.size
	}
	v.size++
	v.gen++
	return i
}

// Erase removes the element at pos, shifting later elements toward the
// head, and returns a cursor to the element that followed it (End() if
// it was last). Capacity is unchanged. All outstanding cursors, including
// pos, are invalidated. Panics if pos is stale, foreign, or End().
func (v *Vector[T]) Erase(pos Cursor[T]) Cursor[T] {
	v.checkCursor(pos, "Erase", false)
	return v.cursor(v.erase(pos.index))
}

// EraseAt removes the element at index i and returns i.
// Panics if i is not in [0, Len()).
func (v *Vector[T]) EraseAt(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: EraseAt position %d outside [0, %d)", i, v.size))
	}
	return v.erase(i)
}

func (v *Vector[T]) erase(i int) int {
	s := v.storage.View(v.size)
	copy(s[i:], s[i+1:])
	v.moves += v.size - i - 1
	v.size--

	// Drop the vacated slot's reference so the GC can reclaim it.
	var zero T
	s[v.size] = zero
	v.gen++
	return i
}

// PopBack removes the last element logically; the slot is left as is.
// Panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	v.panicIfEmpty("PopBack")
	v.size--
	v.gen++
}

// Resize sets Len() to n. Shrinking is logical only. Growing within
// capacity zeroes the new slots; growing past capacity first reserves
// max(n, 2*Cap()). Panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	if n <= v.size {
		v.size = n
		v.gen++
		return
	}
	if n > v.Cap() {
		v.Reserve(max(n, v.Cap()*2))
	}
	clear(v.storage.View(n)[v.size:])
	v.size = n
	v.gen++
}

// Clear sets Len() to 0. Capacity and slot contents are unchanged.
func (v *Vector[T]) Clear() {
	v.size = 0
	v.gen++
}
