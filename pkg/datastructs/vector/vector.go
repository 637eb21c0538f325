package vector

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/datastructs/buffer"
)

// ErrOutOfRange is returned by checked operations when a position lies outside the vector.
var ErrOutOfRange = errors.New("vector: out of range")

// Vector is a growable sequence backed by a single owned buffer.
// The zero value is an empty vector ready to use. It is NOT thread-safe.
type Vector[T any] struct {
	buf      buffer.Owned[T]
	size     int
	capacity int
	reallocs int
}

// New returns an empty vector without an allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of count zero values. Size and capacity equal count.
func NewSize[T any](count int) *Vector[T] {
	var zero T
	return NewFilled(count, zero)
}

// NewFilled returns a vector holding count copies of value.
func NewFilled[T any](count int, value T) *Vector[T] {
	v := &Vector[T]{}
	v.buf.Swap(buffer.New[T](count))
	for i := range v.buf.Data() {
		v.buf.Set(i, value)
	}
	v.size, v.capacity = count, count
	return v
}

// Of returns a vector holding a copy of values, in order.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.buf.Swap(buffer.New[T](len(values)))
	copy(v.buf.Data(), values)
	v.size, v.capacity = len(values), len(values)
	return v
}

// WithCapacity returns an empty vector with room for capacity elements.
func WithCapacity[T any](capacity int) *Vector[T] {
	v := &Vector[T]{}
	v.buf.Swap(buffer.New[T](capacity))
	v.capacity = capacity
	return v
}

// Clone returns a deep copy with the same capacity as v.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	out.buf.Swap(buffer.New[T](v.capacity))
	copy(out.buf.Data(), v.Slice())
	out.size, out.capacity = v.size, v.capacity
	return out
}

// CopyFrom replaces the contents of v with a deep copy of other.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	local := other.Clone()
	v.Swap(local)
}

// Move transfers the buffer of v to a new vector and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.MoveFrom(v)
	return out
}

// MoveFrom takes the buffer of other, dropping the current one. other is left empty.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf.Reset()
	v.buf.Swap(&other.buf)
	v.size, v.capacity, v.reallocs = other.size, other.capacity, other.reallocs
	other.size, other.capacity, other.reallocs = 0, 0, 0
}

// Index returns the element at i. The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Index(i int) T {
	return v.buf.At(i)
}

// Ref returns a pointer to the element at i, valid until the next reallocation.
// The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.Ptr(i)
}

// Set stores value at i. The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Set(i int, value T) {
	v.buf.Set(i, value)
}

// At returns the element at i, or ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf.At(i), nil
}

// AtRef is the checked counterpart of Ref.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return v.buf.Ptr(i), nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("vector: Front on empty vector")
	}
	return v.buf.At(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("vector: Back on empty vector")
	}
	return v.buf.At(v.size - 1)
}

// Slice returns the elements in use. It aliases the buffer and is
// invalidated by the next reallocating operation.
func (v *Vector[T]) Slice() []T {
	if v == nil || v.size == 0 {
		return nil
	}
	return v.buf.Data()[:v.size]
}

// Begin returns the cursor of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the cursor one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Len returns the number of elements in use.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Swap exchanges the contents of v and other without allocating.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, v.size)
	}
	return nil
}
