package vector

import "iter"

// All yields index/value pairs from front to back.
// Mutating the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.At(i)) {
				return
			}
		}
	}
}
