// Package vector implements a growable, indexable sequence of homogeneous
// elements on top of an exclusively-owned buffer.
//
// # Overview
//
// A Vector tracks a logical size (elements in use) and a capacity (slots
// allocated). Appends grow the capacity geometrically so that n appends cost
// O(n) copies in total:
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 9) // [1 9 2]
//	if _, err := v.Erase(5); errors.Is(err, vector.ErrOutOfRange) {
//		// handle
//	}
//
// # Growth Policy
//
//   - PushBack and Insert grow to max(size+1, 2*capacity).
//   - Insert into a vector with zero capacity allocates exactly one slot.
//   - Resize past the capacity reserves 2*n slots for n elements.
//   - Reserve allocates exactly the requested capacity.
//   - Nothing ever shrinks the allocation.
//
// Every growing operation builds the replacement buffer completely before
// swapping it in; the old buffer is not touched while the new one is filled.
//
// # Checked and Unchecked Access
//
// Index, Ref, Set, Front, Back, PopBack and Insert trust the caller. Breaking
// their contracts panics (or, for indices between Len and Cap, silently reads
// unused slots). At, AtRef and Erase validate positions and return an error
// matching ErrOutOfRange instead.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Callers must serialize access.
package vector
