package buffer

import (
	"github.com/pkg/errors"
)

// ErrNegativeSize is the panic value used when a buffer is requested with a negative slot count.
var ErrNegativeSize = errors.New("buffer: negative size is not allowed")

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owned is the single owner of a fixed-length block of T.
// It never resizes; callers needing more room allocate a new Owned and Swap.
// It is NOT thread-safe and must not be copied (go vet reports copies).
type Owned[T any] struct {
	_    noCopy
	data []T
}

// New allocates a block of n zero-valued slots.
// n == 0 holds no allocation. Panics with ErrNegativeSize if n < 0.
func New[T any](n int) *Owned[T] {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeSize, "size %d", n))
	}
	if n == 0 {
		return &Owned[T]{}
	}
	return &Owned[T]{data: make([]T, n)}
}

// Adopt takes ownership of raw. The caller must not touch raw afterwards.
func Adopt[T any](raw []T) *Owned[T] {
	if len(raw) == 0 {
		return &Owned[T]{}
	}
	return &Owned[T]{data: raw[:len(raw):len(raw)]}
}

// Move transfers the block to a new Owned and leaves b empty.
func (b *Owned[T]) Move() *Owned[T] {
	out := &Owned[T]{data: b.data}
	b.data = nil
	return out
}

// Release hands the block to the caller without clearing it. b becomes empty.
func (b *Owned[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// Reset drops the block.
func (b *Owned[T]) Reset() {
	b.data = nil
}

// Swap exchanges blocks with other.
func (b *Owned[T]) Swap(other *Owned[T]) {
	b.data, other.data = other.data, b.data
}

// Valid reports whether b holds an allocation.
func (b *Owned[T]) Valid() bool {
	return b.data != nil
}

// Len returns the number of slots in the block.
func (b *Owned[T]) Len() int {
	return len(b.data)
}

// Data returns the whole block. Ownership stays with b.
func (b *Owned[T]) Data() []T {
	return b.data
}

// At returns the value in slot i. The caller guarantees 0 <= i < Len().
func (b *Owned[T]) At(i int) T {
	return b.data[i]
}

// Ptr returns a pointer to slot i. The caller guarantees 0 <= i < Len().
func (b *Owned[T]) Ptr(i int) *T {
	return &b.data[i]
}

// Set stores v in slot i. The caller guarantees 0 <= i < Len().
func (b *Owned[T]) Set(i int, v T) {
	b.data[i] = v
}
