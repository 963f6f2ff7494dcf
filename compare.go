package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and equal elements
// position by position.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
// A vector that is a strict prefix of the other is smaller.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a orders before b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Greater, LessOrEqual and GreaterOrEqual are derived from Less so the
// four relations always agree.

// Greater reports whether a orders after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Greater(a, b)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessOrEqual(b, a)
}
