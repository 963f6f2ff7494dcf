package vector

import (
	"fmt"
	"slices"
	"testing"
)

func TestAppendDoublesCapacity(t *testing.T) {
	v := New[int]()
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16, 16}

	for i, want := range wantCaps {
		v.Append(i)
		if v.Len() != i+1 {
			t.Errorf("Len() after %d appends = %d, want %d", i+1, v.Len(), i+1)
		}
		if v.Cap() != want {
			t.Errorf("Cap() after %d appends = %d, want %d", i+1, v.Cap(), want)
		}
	}
	for i, x := range v.All() {
		if x != i {
			t.Errorf("element %d = %d, want %d", i, x, i)
		}
	}
}

func TestAppendAmortization(t *testing.T) {
	for _, n := range []int{1, 7, 8, 100, 1000, 4097} {
		t.Run(fmt.Sprintf("n-%d", n), func(t *testing.T) {
			v := New[int]()
			for i := 0; i < n; i++ {
				v.Append(i)
			}

			// Capacities 1, 2, 4, ... up to the first power of two >= n
			wantReallocs := 1
			for c := 1; c < n; c *= 2 {
				wantReallocs++
			}
			if v.Reallocations() != wantReallocs {
				t.Errorf("Reallocations() = %d, want %d", v.Reallocations(), wantReallocs)
			}
			if v.ElementMoves() >= 2*n {
				t.Errorf("ElementMoves() = %d, want < %d", v.ElementMoves(), 2*n)
			}
			if v.Cap() < v.Len() || v.Cap() >= 2*n && n > 1 {
				t.Errorf("Cap() = %d out of bounds for %d elements", v.Cap(), n)
			}
		})
	}
}

func TestGrowthScenario(t *testing.T) {
	v := New[int]()
	v.Append(1)
	v.Append(2)
	v.Append(3)
	assertState(t, v, []int{1, 2, 3}, 4)

	v.InsertAt(1, 9)
	assertState(t, v, []int{1, 9, 2, 3}, 4)

	v.Append(4)
	assertState(t, v, []int{1, 9, 2, 3, 4}, 8)

	v.EraseAt(0)
	assertState(t, v, []int{9, 2, 3, 4}, 8)
}

func TestInsertWithRoom(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"head", 0, []int{9, 1, 2, 3}},
		{"middle", 2, []int{1, 2, 9, 3}},
		{"tail", 3, []int{1, 2, 3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(1, 2, 3)
			v.Reserve(4)
			reallocs := v.Reallocations()

			got := v.InsertAt(tt.index, 9)

			if got != tt.index {
				t.Errorf("InsertAt(%d) = %d, want %d", tt.index, got, tt.index)
			}
			assertState(t, v, tt.want, 4)
			if v.Reallocations() != reallocs {
				t.Error("InsertAt with spare capacity reallocated")
			}
		})
	}
}

func TestInsertWhenFull(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"head", 0, []int{9, 1, 2, 3}},
		{"middle", 1, []int{1, 9, 2, 3}},
		{"tail", 3, []int{1, 2, 3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(1, 2, 3)
			v.InsertAt(tt.index, 9)
			assertState(t, v, tt.want, 6)
			if v.Reallocations() != 1 {
				t.Errorf("Reallocations() = %d, want 1", v.Reallocations())
			}
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	v := New[string]()
	pos := v.Insert(v.Begin(), "x")
	if pos.Index() != 0 || pos.Get() != "x" {
		t.Errorf("Insert into empty returned cursor %d -> %q", pos.Index(), pos.Get())
	}
	if v.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", v.Cap())
	}
}

func TestInsertAtOutOfBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on InsertAt past End()")
		}
	}()
	Of(1, 2).InsertAt(3, 0)
}

func TestInsertEraseRoundTrip(t *testing.T) {
	for _, base := range [][]int{{}, {1}, {1, 2, 3}, {1, 2, 3, 4}} {
		for pos := 0; pos <= len(base); pos++ {
			t.Run(fmt.Sprintf("%v@%d", base, pos), func(t *testing.T) {
				v := Of(base...)
				original := v.Clone()

				v.Erase(v.Insert(v.CursorAt(pos), 42))

				if !Equal(v, original) {
					t.Errorf("Erase(Insert(%d, 42)) = %v, want %v", pos, v, original)
				}
			})
		}
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		want     []int
		wantNext int
	}{
		{"head", 0, []int{2, 3, 4}, 2},
		{"middle", 1, []int{1, 3, 4}, 3},
		{"last", 3, []int{1, 2, 3}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(1, 2, 3, 4)
			next := v.Erase(v.CursorAt(tt.index))

			assertState(t, v, tt.want, 4)
			if tt.wantNext < 0 {
				if next != v.End() {
					t.Errorf("Erase(last) returned %d, want End()", next.Index())
				}
				return
			}
			if next.Get() != tt.wantNext {
				t.Errorf("Erase(%d) cursor -> %d, want %d", tt.index, next.Get(), tt.wantNext)
			}
		})
	}
}

func TestEraseClearsVacatedSlot(t *testing.T) {
	a, b := new(int), new(int)
	v := Of(a, b)
	v.EraseAt(0)
	if v.storage.slots[1] != nil {
		t.Error("vacated slot still holds a reference")
	}
}

func TestEraseEndPanics(t *testing.T) {
	v := Of(1, 2)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Erase(End())")
		}
	}()
	v.Erase(v.End())
}

func TestPopBack(t *testing.T) {
	v := Of(1, 2, 3)
	v.PopBack()
	assertState(t, v, []int{1, 2}, 3)

	// Logical removal only: the slot keeps its value
	if v.storage.slots[2] != 3 {
		t.Errorf("slot 2 after PopBack = %d, want 3", v.storage.slots[2])
	}
}

func TestPopBackEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on PopBack() of empty vector")
		}
	}()
	New[int]().PopBack()
}

func TestReserve(t *testing.T) {
	v := Of(1, 2, 3)

	v.Reserve(2)
	if v.Cap() != 3 || v.Reallocations() != 0 {
		t.Errorf("Reserve(2) on cap 3: cap=%d reallocs=%d, want 3/0", v.Cap(), v.Reallocations())
	}

	v.Reserve(10)
	assertState(t, v, []int{1, 2, 3}, 10)
	if v.Reallocations() != 1 || v.ElementMoves() != 3 {
		t.Errorf("Reserve(10) reallocs/moves = %d/%d, want 1/3", v.Reallocations(), v.ElementMoves())
	}

	// Never shrinks
	v.Reserve(5)
	if v.Cap() != 10 {
		t.Errorf("Reserve(5) shrank capacity to %d", v.Cap())
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    []int
		wantCap int
	}{
		{"truncate", 1, []int{1}, 4},
		{"same size", 3, []int{1, 2, 3}, 4},
		{"grow within capacity", 4, []int{1, 2, 3, 0}, 4},
		{"grow to double", 5, []int{1, 2, 3, 0, 0}, 8},
		{"grow past double", 11, []int{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0}, 11},
		{"to zero", 0, []int{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(1, 2, 3)
			v.Reserve(4)
			v.Resize(tt.n)
			assertState(t, v, tt.want, tt.wantCap)
		})
	}
}

func TestResizeZeroesReusedSlots(t *testing.T) {
	v := Of(1, 2, 3)
	v.Resize(1)
	v.Resize(3)
	assertState(t, v, []int{1, 0, 0}, 3)
}

func TestResizeTruncationKeepsPrefix(t *testing.T) {
	v := Of(1, 2, 3, 4, 5, 6)
	v.Resize(4)
	v.Resize(2)
	assertState(t, v, []int{1, 2}, 6)
}

func TestResizeNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Resize(-1)")
		}
	}()
	New[int]().Resize(-1)
}

func TestClear(t *testing.T) {
	v := Of(1, 2, 3)
	v.Clear()
	assertState(t, v, []int{}, 3)

	v.Append(7)
	assertState(t, v, []int{7}, 3)
}

func assertState(t *testing.T, v *Vector[int], want []int, wantCap int) {
	t.Helper()
	if got := v.Slice(); !slices.Equal(got, want) {
		t.Errorf("elements = %v, want %v", got, want)
	}
	if v.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", v.Len(), len(want))
	}
	if v.Cap() != wantCap {
		t.Errorf("Cap() = %d, want %d", v.Cap(), wantCap)
	}
}
