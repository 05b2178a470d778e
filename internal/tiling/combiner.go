package tiling

import (
	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// CombineTTT composes three trapezoid 1D plans (one per axis) into an
// 8-stage 3D plan. For each 3-bit stage selector (sI, sJ, sK) it forms
// the Cartesian product of the selected per-axis tile lists and emits
// one 3D tile with exactly one subtile per (tI, tJ, tK) triple.
func CombineTTT(i, j, k Plan1D) (Plan3D, error) {
	if len(i) != 2 || len(j) != 2 || len(k) != 2 {
		return nil, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "i/j/k must all be trapezoid tiles for a TTT composition",
		}
	}

	plan := make(Plan3D, 8)

	for stage := 0; stage < 8; stage++ {
		tileListI := i[(stage>>2)&0x01]
		tileListJ := j[(stage>>1)&0x01]
		tileListK := k[(stage>>0)&0x01]

		var tileListIJK TileList3D
		for _, tileI := range tileListI {
			for _, tileJ := range tileListJ {
				for _, tileK := range tileListK {
					if len(tileI) != len(tileJ) || len(tileJ) != len(tileK) {
						return nil, tilingerrors.GeometryError{
							Op:     "CombineTTT",
							Reason: "temporal misalignment: tiles must share the same height",
						}
					}

					subtile := newSubtile3D()
					for halfTs := range tileI {
						subtile.push(rangeFromAxes(tileI[halfTs], tileJ[halfTs], tileK[halfTs]))
					}

					tileListIJK = append(tileListIJK, Tile3D{subtile})
				}
			}
		}

		plan[stage] = tileListIJK
	}

	return plan, nil
}

// CombineTTP composes two trapezoid 1D plans (I, J) and one
// parallelogram 1D plan (K) into a 4-stage 3D plan. For each 2-bit
// stage selector (sI, sJ) it iterates I,J tiles and, for each (tI,
// tJ) column, appends one subtile per K-tile in K-plan order, so the
// serial K-dependency is carried as subtile order inside one 3D
// tile rather than a stage split.
func CombineTTP(i, j, k Plan1D) (Plan3D, error) {
	if len(i) != 2 || len(j) != 2 {
		return nil, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "i/j must be trapezoid tiles for a TTP composition",
		}
	}
	if len(k) != 1 {
		return nil, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "k must be a parallelogram tile for a TTP composition",
		}
	}

	plan := make(Plan3D, 4)
	tileListK := k[0]

	for stage := 0; stage < 4; stage++ {
		tileListI := i[(stage>>1)&0x01]
		tileListJ := j[(stage>>0)&0x01]

		var tileListIJK TileList3D
		for _, tileI := range tileListI {
			for _, tileJ := range tileListJ {
				var tile Tile3D
				for _, tileK := range tileListK {
					if len(tileI) != len(tileJ) || len(tileJ) != len(tileK) {
						return nil, tilingerrors.GeometryError{
							Op:     "CombineTTP",
							Reason: "temporal misalignment: tiles must share the same height",
						}
					}

					subtile := newSubtile3D()
					for halfTs := range tileI {
						subtile.push(rangeFromAxes(tileI[halfTs], tileJ[halfTs], tileK[halfTs]))
					}
					tile = append(tile, subtile)
				}
				tileListIJK = append(tileListIJK, tile)
			}
		}

		plan[stage] = tileListIJK
	}

	return plan, nil
}

func rangeFromAxes(i, j, k geom.Range1D) geom.Range3D {
	return geom.Range3D{
		First: [3]int{i.First, j.First, k.First},
		Last:  [3]int{i.Last, j.Last, k.Last},
	}
}
