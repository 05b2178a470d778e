package tiling

import (
	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// ComputeParallelogramTiles tiles one axis of width totalWidth into a
// single stage of tileWidth-ish parallelogram tiles, each advancing
// halfTimesteps half-steps. halfTimesteps must be even and
// halfTimesteps/2 < tileWidth.
func ComputeParallelogramTiles(totalWidth, tileWidth, halfTimesteps int) (Plan1D, error) {
	if halfTimesteps%2 != 0 {
		return nil, tilingerrors.ArgumentError{
			Flag: "tile-height", Reason: "halfTimesteps must be even",
		}
	}
	if halfTimesteps/2 >= tileWidth {
		return nil, tilingerrors.ArgumentError{
			Flag: "tile-height", Reason: "timestep size is too large for tile size",
		}
	}

	tileMinWidth := tileWidth - halfTimesteps/2
	tileMaxWidth := tileWidth

	var tileList TileList1D
	r := geom.Range1D{First: 0, Last: min(tileMaxWidth-1, totalWidth-1)}

	for r.First <= totalWidth-1 {
		tile := make(Tile1D, 0, halfTimesteps)
		tile = append(tile, r)
		tileList = append(tileList, tile)

		r.First = r.Last + 1
		r.Last = min(r.Last+tileMinWidth, totalWidth-1)
	}

	for tileID := range tileList {
		tile := tileList[tileID]

		for halfTs := 1; halfTs < halfTimesteps; halfTs++ {
			prev := tile[halfTs-1]

			shiftFirst, shiftLast := 0, 0
			if halfTs%2 != 0 {
				shiftFirst, shiftLast = -1, -1
			}

			if tileID == 0 {
				shiftFirst = 0
			}
			if prev.First == 0 && shiftFirst < 0 {
				return nil, tilingerrors.GeometryError{
					Op: "ComputeParallelogramTiles", Reason: "halfTs too large",
				}
			}
			if tileID == len(tileList)-1 || prev.Last+shiftLast > totalWidth-1 {
				shiftLast = 0
			}

			curr := geom.Range1D{
				First: prev.First + shiftFirst,
				Last:  prev.Last + shiftLast,
			}
			tile = append(tile, curr)
		}

		tileList[tileID] = tile
	}

	clipMagneticBoundary(tileList, totalWidth, halfTimesteps)

	return Plan1D{tileList}, nil
}

// clipMagneticBoundary applies clip rule (iii): the right endpoint of
// every magnetic (odd-indexed) half-step can't exceed W-2, since
// that boundary cell's update would read a cell outside the grid.
func clipMagneticBoundary(tileList TileList1D, totalWidth, halfTimesteps int) {
	for tileID := range tileList {
		tile := tileList[tileID]
		for halfTs := 1; halfTs < halfTimesteps; halfTs++ {
			if halfTs%2 == 1 && tile[halfTs].Last > totalWidth-2 {
				tile[halfTs].Last = totalWidth - 2
			}
		}
	}
}
