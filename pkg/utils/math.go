package utils

import "math"

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)
)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
func CeilToPowerOfTwo(n int) int {
	if n&maxIntHeadBit != 0 && n > maxIntHeadBit {
		panic("argument is too large")
	}

	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}

// GrowCapacity returns the capacity needed to append one element to a
// sequence of the given size and capacity: max(size+1, 2*capacity).
// A zero capacity grows to exactly one slot.
func GrowCapacity(size, capacity int) int {
	if capacity > math.MaxInt/2 {
		panic("utils: capacity overflow")
	}
	return max(size+1, capacity*2)
}

// ResizeCapacity returns the capacity reserved when a sequence is resized
// past its capacity to n elements. It over-allocates to 2n.
func ResizeCapacity(n int) int {
	if n > math.MaxInt/2 {
		panic("utils: capacity overflow")
	}
	return n * 2
}
