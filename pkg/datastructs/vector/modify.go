package vector

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/datastructs/buffer"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

// Clear drops all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.buf.Data()[:v.size])
	v.size = 0
}

// Resize sets the number of elements to n.
// Within the capacity it truncates or zero-extends in place. Past the
// capacity it reallocates and reserves room for 2n elements.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(errors.Wrapf(buffer.ErrNegativeSize, "vector: resize to %d", n))
	}
	if n <= v.capacity {
		data := v.buf.Data()
		if n < v.size {
			clear(data[n:v.size])
		} else {
			clear(data[v.size:n])
		}
		v.size = n
		return
	}
	v.realloc(utils.ResizeCapacity(n))
	v.size = n
}

// Reserve ensures the capacity is at least n. It allocates exactly n slots
// when growth is needed and never changes the size.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.realloc(n)
	}
}

// PushBack appends value, growing the capacity to max(Len()+1, 2*Cap()) when full.
func (v *Vector[T]) PushBack(value T) {
	if v.size+1 > v.capacity {
		v.realloc(utils.GrowCapacity(v.size, v.capacity))
	}
	v.buf.Set(v.size, value)
	v.size++
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	var zero T
	v.buf.Set(v.size, zero)
}

// Insert places value at pos, shifting later elements back, and returns pos.
// pos must lie in [Begin(), End()]; inserting at End() appends.
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}

	if v.size < v.capacity {
		data := v.buf.Data()
		copy(data[pos+1:v.size+1], data[pos:v.size])
		data[pos] = value
		v.size++
		return pos
	}

	newCapacity := 1
	if v.capacity > 0 {
		newCapacity = utils.GrowCapacity(v.size, v.capacity)
	}
	local := buffer.New[T](newCapacity)
	old, next := v.buf.Data(), local.Data()
	copy(next, old[:pos])
	copy(next[pos+1:], old[pos:v.size])
	next[pos] = value

	v.buf.Swap(local)
	v.capacity = newCapacity
	v.reallocs++
	v.size++
	return pos
}

// Erase removes the element at pos and returns pos, which now refers to the
// following element or End(). It returns ErrOutOfRange unless pos lies in
// [Begin(), End()).
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		return pos, errors.Wrapf(ErrOutOfRange, "erase position %d, size %d", pos, v.size)
	}
	data := v.buf.Data()
	copy(data[pos:], data[pos+1:v.size])
	v.size--
	var zero T
	data[v.size] = zero
	return pos, nil
}

// realloc moves the elements into a fresh buffer of capacity slots and
// swaps it in. The old buffer is not modified.
func (v *Vector[T]) realloc(capacity int) {
	local := buffer.New[T](capacity)
	copy(local.Data(), v.buf.Data()[:v.size])
	v.buf.Swap(local)
	v.capacity = capacity
	v.reallocs++
}
