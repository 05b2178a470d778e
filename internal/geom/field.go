package geom

import "github.com/biergaizi/project-diamond/internal/tilingerrors"

// Field is a dense 4D array indexed (i, j, k, n), n the innermost,
// stride-1 dimension (the vector-component axis of an electromagnetic
// field cell). Storage is row-major in (I, J, K, N), a flat slice
// with precomputed strides.
//
// Every access is bounds-checked; an out-of-bounds index is a fatal
// programming error, not a recoverable condition, so Get/Set panic
// with an OutOfBoundsError rather than returning one.
type Field[T any] struct {
	dimI, dimJ, dimK, dimN int
	strideI, strideJ, strideK int
	data []T
}

// NewField allocates a zero-valued field of the given shape.
func NewField[T any](dimI, dimJ, dimK, dimN int) *Field[T] {
	f := &Field[T]{
		dimI: dimI, dimJ: dimJ, dimK: dimK, dimN: dimN,
		strideK: dimN,
		strideJ: dimN * dimK,
		strideI: dimN * dimK * dimJ,
	}
	f.data = make([]T, dimI*dimJ*dimK*dimN)
	return f
}

// Shape returns the field's (I, J, K, N) extents.
func (f *Field[T]) Shape() [4]int {
	return [4]int{f.dimI, f.dimJ, f.dimK, f.dimN}
}

func (f *Field[T]) offset(i, j, k, n int) int {
	if i < 0 || i >= f.dimI || j < 0 || j >= f.dimJ ||
		k < 0 || k >= f.dimK || n < 0 || n >= f.dimN {
		panic(tilingerrors.OutOfBoundsError{
			Index: [4]int{i, j, k, n},
			Shape: [4]int{f.dimI, f.dimJ, f.dimK, f.dimN},
		})
	}
	return i*f.strideI + j*f.strideJ + k*f.strideK + n
}

// Get returns the value at (i, j, k, n).
func (f *Field[T]) Get(i, j, k, n int) T {
	return f.data[f.offset(i, j, k, n)]
}

// Set stores value at (i, j, k, n).
func (f *Field[T]) Set(i, j, k, n int, value T) {
	f.data[f.offset(i, j, k, n)] = value
}

// Fill sets every cell of the field by calling gen(i, j, k, n) for
// each coordinate, in row-major order.
func (f *Field[T]) Fill(gen func(i, j, k, n int) T) {
	for i := 0; i < f.dimI; i++ {
		for j := 0; j < f.dimJ; j++ {
			for k := 0; k < f.dimK; k++ {
				for n := 0; n < f.dimN; n++ {
					f.Set(i, j, k, n, gen(i, j, k, n))
				}
			}
		}
	}
}

// CopyFrom overwrites f's contents with src's. Both fields must share
// the same shape.
func (f *Field[T]) CopyFrom(src *Field[T]) {
	if f.Shape() != src.Shape() {
		panic(tilingerrors.GeometryError{
			Op:     "Field.CopyFrom",
			Reason: "shape mismatch",
		})
	}
	copy(f.data, src.data)
}
