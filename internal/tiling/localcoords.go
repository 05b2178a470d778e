package tiling

import "github.com/biergaizi/project-diamond/internal/geom"

// ToLocalCoords returns a copy of plan translated so every subtile's
// ranges are zero-based relative to that subtile's own bounding box
// (range.First[n] -= subtile.First[n], likewise for Last). It is
// what a driver would use to copy a subtile's cells into a small
// cache-resident scratch buffer before updating it; the main driver
// in internal/executor runs directly against global coordinates
// instead.
func ToLocalCoords(plan Plan3D) Plan3D {
	out := make(Plan3D, len(plan))
	for s, stage := range plan {
		outStage := make(TileList3D, len(stage))
		for t, tile := range stage {
			outTile := make(Tile3D, len(tile))
			for st, subtile := range tile {
				outTile[st] = localizeSubtile(subtile)
			}
			outStage[t] = outTile
		}
		out[s] = outStage
	}
	return out
}

func localizeSubtile(subtile Subtile3D) Subtile3D {
	out := newSubtile3D()
	for _, r := range subtile.Ranges {
		var lr geom.Range3D
		for n := 0; n < 3; n++ {
			lr.First[n] = r.First[n] - subtile.First[n]
			lr.Last[n] = r.Last[n] - subtile.First[n]
		}
		out.push(lr)
	}
	return out
}
