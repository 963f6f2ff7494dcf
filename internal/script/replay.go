package script

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pavanmanishd/vector"
)

// ValueParser converts a script token into an element.
type ValueParser[T any] func(string) (T, error)

// Int64 parses base-10 integers.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// String accepts the token as is.
func String(s string) (string, error) {
	return s, nil
}

// Step describes the vector after one instruction.
type Step struct {
	Instr       Instr
	Output      string // result of at/print, or a reported out-of-range error
	Size        int
	Capacity    int
	Reallocated bool
	Moves       int // element moves performed by this instruction
}

// Replayer applies instructions to a vector.
type Replayer[T any] struct {
	vec     *vector.Vector[T]
	parse   ValueParser[T]
	observe func(Step)
}

// NewReplayer returns a Replayer driving v.
func NewReplayer[T any](v *vector.Vector[T], parse ValueParser[T]) *Replayer[T] {
	return &Replayer[T]{vec: v, parse: parse}
}

// OnStep registers fn to be called after every instruction.
func (r *Replayer[T]) OnStep(fn func(Step)) {
	r.observe = fn
}

// Run executes instrs in order and stops at the first error. Checked
// access failures (at/set past the end) are reported in Step.Output and
// do not stop the run; operations whose preconditions do not hold are
// rejected with an error before they reach the vector.
func (r *Replayer[T]) Run(instrs []Instr) error {
	for _, in := range instrs {
		before := r.vec.Metrics()
		out, err := r.exec(in)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", in.Line, in.Op, err)
		}
		after := r.vec.Metrics()
		if r.observe != nil {
			r.observe(Step{
				Instr:       in,
				Output:      out,
				Size:        after.Size,
				Capacity:    after.Capacity,
				Reallocated: after.Reallocations > before.Reallocations,
				Moves:       after.ElementMoves - before.ElementMoves,
			})
		}
	}
	return nil
}

func (r *Replayer[T]) exec(in Instr) (string, error) {
	v := r.vec
	switch in.Op {
	case OpAppend:
		x, err := r.value(in.Args[0])
		if err != nil {
			return "", err
		}
		v.Append(x)
	case OpInsert:
		i, err := index(in.Args[0], v.Len()+1)
		if err != nil {
			return "", err
		}
		x, err := r.value(in.Args[1])
		if err != nil {
			return "", err
		}
		v.InsertAt(i, x)
	case OpErase:
		i, err := index(in.Args[0], v.Len())
		if err != nil {
			return "", err
		}
		v.EraseAt(i)
	case OpPop:
		if v.Empty() {
			return "", errors.New("vector is empty")
		}
		v.PopBack()
	case OpReserve:
		n, err := count(in.Args[0])
		if err != nil {
			return "", err
		}
		v.Reserve(n)
	case OpResize:
		n, err := count(in.Args[0])
		if err != nil {
			return "", err
		}
		v.Resize(n)
	case OpClear:
		v.Clear()
	case OpAt:
		i, err := strconv.Atoi(in.Args[0])
		if err != nil {
			return "", fmt.Errorf("invalid index %q", in.Args[0])
		}
		x, err := v.At(i)
		if err != nil {
			return err.Error(), nil
		}
		return fmt.Sprint(x), nil
	case OpSet:
		i, err := strconv.Atoi(in.Args[0])
		if err != nil {
			return "", fmt.Errorf("invalid index %q", in.Args[0])
		}
		x, err := r.value(in.Args[1])
		if err != nil {
			return "", err
		}
		if err := v.SetAt(i, x); err != nil {
			return err.Error(), nil
		}
	case OpPrint:
		return v.String(), nil
	default:
		return "", errors.New("unsupported operation")
	}
	return "", nil
}

func (r *Replayer[T]) value(s string) (T, error) {
	x, err := r.parse(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return x, nil
}

// index parses a position that must lie in [0, limit).
func index(s string, limit int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	if i < 0 || i >= limit {
		return 0, fmt.Errorf("position %d outside [0, %d)", i, limit)
	}
	return i, nil
}

// count parses a non-negative size or capacity.
func count(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return n, nil
}
