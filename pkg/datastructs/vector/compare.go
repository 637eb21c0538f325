package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements in
// index order. A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A shorter vector that is a prefix of the
// longer one is less.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with compare.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether b does not sort before a.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether b sorts before a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
