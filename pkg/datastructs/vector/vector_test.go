package vector

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-vector/pkg/datastructs/buffer"
)

// =============================================================================
// Constructors
// =============================================================================

func TestNew_Empty(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.True(t, v.IsEmpty())
	assert.False(t, v.buf.Valid())
}

func TestZeroValue_Usable(t *testing.T) {
	var v Vector[int]
	v.PushBack(1)
	assert.Equal(t, []int{1}, v.Slice())
}

func TestNewSize(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		v := NewSize[int](n)
		assert.Equal(t, n, v.Len(), "size for n=%d", n)
		assert.Equal(t, n, v.Cap(), "capacity for n=%d", n)
		for x := range v.Values() {
			assert.Zero(t, x)
		}
	}
}

func TestNewFilled(t *testing.T) {
	v := NewFilled(3, "go")
	assert.Equal(t, []string{"go", "go", "go"}, v.Slice())
	assert.Equal(t, 3, v.Cap())
}

func TestNewSize_NegativePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, buffer.ErrNegativeSize)
	}()
	NewSize[int](-3)
}

func TestOf(t *testing.T) {
	v := Of(1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())

	empty := Of[int]()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Cap())
}

func TestOf_CopiesInput(t *testing.T) {
	in := []int{1, 2}
	v := Of(in...)
	in[0] = 9
	assert.Equal(t, 1, v.Index(0))
}

func TestWithCapacity(t *testing.T) {
	v := WithCapacity[int](16)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 16, v.Cap())

	for i := 0; i < 16; i++ {
		v.PushBack(i)
	}
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 0, v.Stats().Reallocations)
}

// =============================================================================
// Copy and move
// =============================================================================

func TestClone(t *testing.T) {
	src := WithCapacity[int](8)
	src.PushBack(1)
	src.PushBack(2)

	dst := src.Clone()
	assert.Equal(t, src.Slice(), dst.Slice())
	assert.Equal(t, 8, dst.Cap())

	dst.Set(0, 100)
	assert.Equal(t, 1, src.Index(0), "clone must not share storage")
}

func TestCopyFrom(t *testing.T) {
	dst := Of(9, 9, 9, 9, 9)
	src := Of(1, 2)

	dst.CopyFrom(src)
	assert.Equal(t, []int{1, 2}, dst.Slice())
	assert.Equal(t, []int{1, 2}, src.Slice())

	capBefore := dst.Cap()
	dst.CopyFrom(dst)
	assert.Equal(t, []int{1, 2}, dst.Slice())
	assert.Equal(t, capBefore, dst.Cap(), "self copy must keep the buffer")
}

func TestMove(t *testing.T) {
	src := Of(1, 2, 3)
	dst := src.Move()

	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
	assert.Equal(t, 3, dst.Cap())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	assert.False(t, src.buf.Valid())

	// moved-from vector stays usable
	src.PushBack(7)
	assert.Equal(t, []int{7}, src.Slice())
}

func TestMoveFrom(t *testing.T) {
	dst := Of("a")
	src := Of("x", "y")

	dst.MoveFrom(src)
	assert.Equal(t, []string{"x", "y"}, dst.Slice())
	assert.True(t, src.IsEmpty())

	dst.MoveFrom(dst)
	assert.Equal(t, []string{"x", "y"}, dst.Slice())
}

func TestSwap(t *testing.T) {
	a := Of(1, 2, 3)
	b := WithCapacity[int](10)
	b.PushBack(4)

	a.Swap(b)
	assert.Equal(t, []int{4}, a.Slice())
	assert.Equal(t, 10, a.Cap())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Equal(t, 3, b.Cap())
}

// =============================================================================
// Access
// =============================================================================

func TestAt(t *testing.T) {
	v := Of(10, 20, 30)

	tests := []struct {
		name    string
		index   int
		want    int
		wantErr bool
	}{
		{"first", 0, 10, false},
		{"last", 2, 30, false},
		{"size", 3, 0, true},
		{"beyond", 100, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.At(tt.index)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAt_Empty(t *testing.T) {
	v := New[int]()
	_, err := v.At(0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestAt_ChecksSizeNotCapacity(t *testing.T) {
	v := WithCapacity[int](4)
	v.PushBack(1)
	_, err := v.At(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAtRef(t *testing.T) {
	v := Of(1, 2)
	p, err := v.AtRef(1)
	require.NoError(t, err)
	*p = 5
	assert.Equal(t, []int{1, 5}, v.Slice())

	p, err = v.AtRef(2)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIndexAndSet(t *testing.T) {
	v := NewSize[int](3)
	v.Set(1, 4)
	*v.Ref(2) = 8
	assert.Equal(t, 0, v.Index(0))
	assert.Equal(t, 4, v.Index(1))
	assert.Equal(t, 8, v.Index(2))
}

func TestIndex_BeyondCapacityPanics(t *testing.T) {
	v := Of(1)
	assert.Panics(t, func() { _ = v.Index(1) })
}

func TestFrontBack(t *testing.T) {
	v := Of(3, 4, 5)
	assert.Equal(t, 3, v.Front())
	assert.Equal(t, 5, v.Back())

	empty := New[int]()
	assert.Panics(t, func() { empty.Front() })
	assert.Panics(t, func() { empty.Back() })
}

func TestBeginEnd(t *testing.T) {
	v := Of(1, 2)
	assert.Equal(t, 0, v.Begin())
	assert.Equal(t, 2, v.End())
}

func TestSlice_Empty(t *testing.T) {
	assert.Nil(t, New[int]().Slice())
	var nilVec *Vector[int]
	assert.Nil(t, nilVec.Slice())
}

// =============================================================================
// Iteration
// =============================================================================

func TestAll(t *testing.T) {
	v := Of("a", "b", "c")
	var idx []int
	var got []string
	for i, s := range v.All() {
		idx = append(idx, i)
		got = append(got, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestAll_Break(t *testing.T) {
	v := Of(1, 2, 3, 4)
	count := 0
	for _, x := range v.All() {
		if x == 3 {
			break
		}
		count++
	}
	assert.Equal(t, 2, count)
}

func TestBackward(t *testing.T) {
	v := Of(1, 2, 3)
	var got []int
	for _, x := range v.Backward() {
		got = append(got, x)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestValues_IgnoresSpareCapacity(t *testing.T) {
	v := WithCapacity[int](8)
	v.PushBack(1)
	var got []int
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, []int{1}, got)
}

// =============================================================================
// Stats
// =============================================================================

func TestStats(t *testing.T) {
	v := New[int]()
	s := v.Stats()
	assert.Equal(t, Stats{}, s)

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	s = v.Stats()
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, 4, s.Capacity)
	assert.Equal(t, 3, s.Reallocations)
	assert.InDelta(t, 0.75, s.Utilization, 1e-9)
}
