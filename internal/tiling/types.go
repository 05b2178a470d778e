// Package tiling implements the 1D parallelogram/trapezoid tile
// generators, their 3D composition into multi-stage plans, and the
// plan-iterator contract a driver must follow to consume a plan
// correctly.
package tiling

import "github.com/biergaizi/project-diamond/internal/geom"

// Tile1D is one tile's ordered sequence of per-half-step ranges along
// a single axis; its length is the tile height H.
type Tile1D []geom.Range1D

// TileList1D is one stage's tiles. All tiles in a TileList1D are
// mutually independent.
type TileList1D []Tile1D

// Plan1D is an ordered sequence of stages along one axis.
// Parallelogram tilings produce one stage; trapezoid tilings produce
// two (mountains, then valleys).
type Plan1D []TileList1D

// Subtile3D is one parallelogram time-slab inside a 3D tile: an
// ordered sequence of Range3D, one per half-step, with a cached
// bounding box.
type Subtile3D struct {
	First, Last [3]int
	Ranges      []geom.Range3D
}

func newSubtile3D() Subtile3D {
	return Subtile3D{
		First: [3]int{maxInt, maxInt, maxInt},
		Last:  [3]int{0, 0, 0},
	}
}

const maxInt = int(^uint(0) >> 1)

// push appends a half-step range and folds it into the bounding box.
func (s *Subtile3D) push(r geom.Range3D) {
	s.Ranges = append(s.Ranges, r)
	for n := 0; n < 3; n++ {
		if r.First[n] < s.First[n] {
			s.First[n] = r.First[n]
		}
		if r.Last[n] > s.Last[n] {
			s.Last[n] = r.Last[n]
		}
	}
}

// Len returns the number of half-step ranges in the subtile.
func (s Subtile3D) Len() int { return len(s.Ranges) }

// BoundingBox returns the subtile's cached bounding box as a Range3D.
func (s Subtile3D) BoundingBox() geom.Range3D {
	return geom.Range3D{First: s.First, Last: s.Last}
}

// Tile3D is an ordered sequence of subtiles. A TTT composition
// produces tiles with exactly one subtile; a TTP composition produces
// tiles whose subtiles are the consecutive K-axis parallelograms of
// one (I,J) column, in the order they must be executed.
type Tile3D []Subtile3D

// TileList3D is one stage's 3D tiles; all tiles in it are mutually
// independent.
type TileList3D []Tile3D

// Plan3D is an ordered sequence of stages: 8 for a TTT composition,
// 4 for a TTP composition.
type Plan3D []TileList3D
