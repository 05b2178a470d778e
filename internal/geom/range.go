// Package geom provides the inclusive range and dense-array primitives
// the tiling planner and its drivers are built on.
package geom

// Range1D is an inclusive range [First, Last] along one axis.
type Range1D struct {
	First, Last int
}

// Len returns the number of cells the range covers.
func (r Range1D) Len() int {
	return r.Last - r.First + 1
}

// Empty reports whether the range is the sentinel empty range used
// during 3D composition for out-of-grid fragments.
func (r Range1D) Empty() bool {
	return r.Last < r.First
}

// EmptyRange1D is the sentinel empty range.
var EmptyRange1D = Range1D{First: 1, Last: 0}

// Range3D is an inclusive box across three axes.
type Range3D struct {
	First, Last [3]int
}

// Len returns the per-axis extents of the box.
func (r Range3D) Len() [3]int {
	return [3]int{
		r.Last[0] - r.First[0] + 1,
		r.Last[1] - r.First[1] + 1,
		r.Last[2] - r.First[2] + 1,
	}
}

// Union returns the componentwise min of firsts and max of lasts of
// r and s, i.e. the smallest box containing both.
func (r Range3D) Union(s Range3D) Range3D {
	var out Range3D
	for n := 0; n < 3; n++ {
		out.First[n] = min(r.First[n], s.First[n])
		out.Last[n] = max(r.Last[n], s.Last[n])
	}
	return out
}
