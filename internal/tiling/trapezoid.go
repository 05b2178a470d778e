package tiling

import (
	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// ComputeTrapezoidTiles tiles one axis of width totalWidth into two
// stages, mountains (stage 0) then valleys (stage 1), of
// alternating tiles, each advancing halfTimesteps half-steps.
// halfTimesteps must be even and halfTimesteps+1 < tileWidth.
func ComputeTrapezoidTiles(totalWidth, tileWidth, halfTimesteps int) (Plan1D, error) {
	if halfTimesteps%2 != 0 {
		return nil, tilingerrors.ArgumentError{
			Flag: "tile-height", Reason: "halfTimesteps must be even",
		}
	}
	if halfTimesteps+1 >= tileWidth {
		return nil, tilingerrors.ArgumentError{
			Flag: "tile-height", Reason: "timestep size is too large for tile size",
		}
	}

	tileMinWidth := tileWidth - halfTimesteps + 1
	tileMaxWidth := tileWidth
	mountainOverlapWidth := halfTimesteps/2 - 1

	var tileList TileList1D
	r := geom.Range1D{First: 0, Last: min(tileMaxWidth-1, totalWidth-1)}

	for r.First <= totalWidth-1 {
		tile := make(Tile1D, 0, halfTimesteps)
		tile = append(tile, r)
		tileList = append(tileList, tile)

		r.First = r.Last + 1
		if len(tileList)%2 == 0 || totalWidth == tileWidth {
			r.Last = min(r.First+tileMaxWidth-1, totalWidth-1)
		} else {
			r.Last = min(r.First+tileMinWidth-1, totalWidth-1)

			// Merge rule: if the upcoming valley's range would
			// otherwise be followed by a truncated trailing mountain,
			// absorb the whole remainder into this valley instead.
			if r.Last+mountainOverlapWidth >= totalWidth-1 {
				r.Last = totalWidth - 1
			}
		}
	}

	if len(tileList) < 2 {
		return nil, tilingerrors.GeometryError{
			Op:     "ComputeTrapezoidTiles",
			Reason: "axis length too small to admit one mountain and one valley",
		}
	}

	for tileID := range tileList {
		tile := tileList[tileID]

		for halfTs := 1; halfTs < halfTimesteps; halfTs++ {
			prev := tile[halfTs-1]

			var shiftFirst, shiftLast int
			if tileID%2 == 0 {
				// mountain
				if halfTs%2 == 1 {
					shiftLast = -1
				} else {
					shiftFirst = 1
				}
			} else {
				// valley
				if halfTs%2 == 1 {
					shiftFirst = -1
				} else {
					shiftLast = 1
				}
			}

			if tileID == 0 {
				shiftFirst = 0
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

	plan := Plan1D{nil, nil}
	for tileID, tile := range tileList {
		if tileID%2 == 0 {
			plan[0] = append(plan[0], tile)
		} else {
			plan[1] = append(plan[1], tile)
		}
	}

	return plan, nil
}
