package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

func TestFieldIndexing(t *testing.T) {
	f := NewField[int](4, 3, 2, 3)

	assert.Equal(t, [4]int{4, 3, 2, 3}, f.Shape())

	t.Run("round trip", func(t *testing.T) {
		f.Set(3, 2, 1, 2, 42)
		assert.Equal(t, 42, f.Get(3, 2, 1, 2))

		f.Set(0, 0, 0, 0, 7)
		assert.Equal(t, 7, f.Get(0, 0, 0, 0))
	})

	t.Run("n is the stride-1 dimension", func(t *testing.T) {
		// adjacent n values of one cell map to adjacent storage, so
		// writing one must not clobber its neighbor
		f.Set(1, 1, 1, 0, 10)
		f.Set(1, 1, 1, 1, 11)
		f.Set(1, 1, 1, 2, 12)
		assert.Equal(t, 10, f.Get(1, 1, 1, 0))
		assert.Equal(t, 11, f.Get(1, 1, 1, 1))
		assert.Equal(t, 12, f.Get(1, 1, 1, 2))
	})

	t.Run("distinct cells are distinct storage", func(t *testing.T) {
		g := NewField[int](2, 2, 2, 1)
		count := 0
		g.Fill(func(i, j, k, n int) int {
			count++
			return i*100 + j*10 + k
		})
		assert.Equal(t, 8, count)
		assert.Equal(t, 111, g.Get(1, 1, 1, 0))
		assert.Equal(t, 10, g.Get(0, 1, 0, 0))
	})
}

func TestFieldOutOfBounds(t *testing.T) {
	f := NewField[int](4, 3, 2, 3)

	cases := []struct {
		name       string
		i, j, k, n int
	}{
		{"i too large", 4, 0, 0, 0},
		{"j too large", 0, 3, 0, 0},
		{"k too large", 0, 0, 2, 0},
		{"n too large", 0, 0, 0, 3},
		{"i negative", -1, 0, 0, 0},
		{"n negative", 0, 0, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				require.NotNil(t, recovered, "expected a panic")
				oob, ok := recovered.(tilingerrors.OutOfBoundsError)
				require.True(t, ok, "expected an OutOfBoundsError, got %v", recovered)
				assert.Equal(t, [4]int{tc.i, tc.j, tc.k, tc.n}, oob.Index)
				assert.Equal(t, [4]int{4, 3, 2, 3}, oob.Shape)
			}()
			f.Get(tc.i, tc.j, tc.k, tc.n)
		})
	}
}

func TestFieldCopyFrom(t *testing.T) {
	src := NewField[int](2, 2, 2, 3)
	src.Fill(func(i, j, k, n int) int { return i + j + k + n })

	dst := NewField[int](2, 2, 2, 3)
	dst.CopyFrom(src)
	assert.Equal(t, src.Get(1, 1, 1, 2), dst.Get(1, 1, 1, 2))

	// copies don't alias
	dst.Set(1, 1, 1, 2, 99)
	assert.NotEqual(t, 99, src.Get(1, 1, 1, 2))

	t.Run("shape mismatch panics", func(t *testing.T) {
		other := NewField[int](2, 2, 3, 3)
		assert.Panics(t, func() { other.CopyFrom(src) })
	})
}

func TestRange1D(t *testing.T) {
	r := Range1D{First: 3, Last: 7}
	assert.Equal(t, 5, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, EmptyRange1D.Empty())
}

func TestRange3DUnion(t *testing.T) {
	a := Range3D{First: [3]int{0, 5, 2}, Last: [3]int{3, 9, 4}}
	b := Range3D{First: [3]int{1, 2, 3}, Last: [3]int{2, 11, 3}}

	u := a.Union(b)
	assert.Equal(t, [3]int{0, 2, 2}, u.First)
	assert.Equal(t, [3]int{3, 11, 4}, u.Last)

	assert.Equal(t, [3]int{4, 5, 3}, a.Len())
}
