package tiling

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Visualize renders a 1D plan as an ASCII diagram: one row per
// half-step (top to bottom, newest half-step first), one column per
// grid position, stage 0 tiles labelled '0','1',... and stage 1
// tiles (if present) labelled 'A','B',... This is purely
// informational; no consumer depends on the exact character grid.
func Visualize(w io.Writer, plan Plan1D, totalWidth int) {
	if len(plan) == 0 {
		return
	}
	halfTimesteps := len(plan[0][0])

	grid := make([][]byte, halfTimesteps)
	for h := range grid {
		row := make([]byte, totalWidth)
		for p := range row {
			row[p] = '!'
		}
		grid[h] = row
	}

	for stageIdx, tileList := range plan {
		var tileID byte
		if stageIdx == 0 {
			tileID = '0'
		} else {
			tileID = 'A'
		}

		for _, tile := range tileList {
			for halfTs, r := range tile {
				for pos := r.First; pos <= r.Last; pos++ {
					if pos < 0 || pos > totalWidth-1 {
						continue
					}
					grid[halfTs][pos] = tileID
				}
			}
			tileID++
		}
	}

	for halfTs := halfTimesteps - 1; halfTs >= 0; halfTs-- {
		w.Write(grid[halfTs])
		w.Write([]byte("\n"))
	}
}

// SubtileShape is one unique (I,J,K) extent observed across a 3D
// plan's subtiles, with the number of subtiles sharing that shape.
type SubtileShape struct {
	I, J, K int
	Count   int
}

// ShapeHistogram counts how many subtiles of plan share each unique
// (I,J,K) extent, and estimates the one-time coefficient-array
// footprint (vv, vi, ii, iv; no double-counting of volt/curr, which
// live across the whole run rather than per-tile) if every subtile
// were materialized as its own scratch buffer, i.e. the tiled
// working-set cost, contrasted against the naive full-grid
// allocation.
//
// elementSize is the size in bytes of one scalar field component
// (e.g. 4 for float32); vectorComponents is normally 3.
func ShapeHistogram(plan Plan3D, gridSize [3]int, elementSize, vectorComponents int) ([]SubtileShape, int, int) {
	const coefficientArrays = 4 // vv, vi, ii, iv

	counts := map[[3]int]int{}
	for _, stage := range plan {
		for _, tile := range stage {
			for _, subtile := range tile {
				shape := [3]int{
					subtile.Last[0] - subtile.First[0] + 1,
					subtile.Last[1] - subtile.First[1] + 1,
					subtile.Last[2] - subtile.First[2] + 1,
				}
				counts[shape]++
			}
		}
	}

	shapes := make([]SubtileShape, 0, len(counts))
	totalOverlapped := 0
	for shape, count := range counts {
		shapes = append(shapes, SubtileShape{I: shape[0], J: shape[1], K: shape[2], Count: count})

		bytes := shape[0] * shape[1] * shape[2]
		bytes *= vectorComponents
		bytes *= elementSize
		bytes *= coefficientArrays
		bytes *= count
		totalOverlapped += bytes
	}
	sort.Slice(shapes, func(a, b int) bool {
		if shapes[a].I != shapes[b].I {
			return shapes[a].I < shapes[b].I
		}
		if shapes[a].J != shapes[b].J {
			return shapes[a].J < shapes[b].J
		}
		return shapes[a].K < shapes[b].K
	})

	totalNaive := gridSize[0] * gridSize[1] * gridSize[2]
	totalNaive *= vectorComponents
	totalNaive *= elementSize
	totalNaive *= coefficientArrays

	return shapes, totalNaive, totalOverlapped
}

// ShapeStats reports the mean and standard deviation of subtile byte
// footprint across shapes, weighted by how many subtiles share each
// shape.
func ShapeStats(shapes []SubtileShape, elementSize, vectorComponents int) (mean, stddev float64) {
	if len(shapes) == 0 {
		return 0, 0
	}
	bytesPerShape := make([]float64, len(shapes))
	weights := make([]float64, len(shapes))
	for idx, s := range shapes {
		bytesPerShape[idx] = float64(s.I * s.J * s.K * vectorComponents * elementSize)
		weights[idx] = float64(s.Count)
	}
	return stat.MeanStdDev(bytesPerShape, weights)
}

// EstimateTraffic estimates the DRAM bytes a tiled run of plan would
// move: each subtile contributes extent(I) x extent(J) x extent(K) x
// vectorComponents x elementSize x 8 bytes (volt r/w, curr r/w, vv r,
// vi r, ii r, iv r), where extent is measured last-first.
//
// If slidingWindow is true (TTP compositions only), every subtile
// after the first one in a tile
// measures its K-extent as the diff against the previous subtile's
// last K index rather than its own first-to-last span, modeling a
// K-axis sliding cache window that only re-reads the newly exposed
// slice.
func EstimateTraffic(plan Plan3D, elementSize, vectorComponents int, slidingWindow bool) int {
	const readWriteFields = 8

	total := 0
	for _, stage := range plan {
		for _, tile := range stage {
			for subtileID, subtile := range tile {
				i := subtile.Last[0] - subtile.First[0]
				j := subtile.Last[1] - subtile.First[1]

				var k int
				if subtileID == 0 || !slidingWindow {
					k = subtile.Last[2] - subtile.First[2]
				} else {
					lastK := tile[subtileID-1].Last[2]
					currK := subtile.Last[2]
					k = currK - lastK
				}

				bytes := i * j * k
				bytes *= vectorComponents
				bytes *= elementSize
				bytes *= readWriteFields
				total += bytes
			}
		}
	}
	return total
}

// EstimateNaiveTraffic estimates the DRAM bytes a naive, untiled run
// over the full grid would move in timesteps timesteps: every cell
// contributes 10 field accesses per timestep (volt r/w, curr r, vv r,
// vi r on the electric half-step; curr r/w, volt r, ii r, iv r on the
// magnetic one), with nothing cache-resident between half-steps.
func EstimateNaiveTraffic(gridSize [3]int, elementSize, vectorComponents, timesteps int) int {
	const readWriteFields = 10

	bytes := gridSize[0] * gridSize[1] * gridSize[2]
	bytes *= vectorComponents
	bytes *= elementSize
	bytes *= readWriteFields
	bytes *= timesteps
	return bytes
}

// DumpPlan3D renders a 3D plan as nested indented records for
// debugging: one line per stage, tile, subtile and half-step range.
// No consumer depends on this format.
func DumpPlan3D(w io.Writer, plan Plan3D) {
	for stageIdx, stage := range plan {
		fmt.Fprintf(w, "stage %d\n", stageIdx)
		for tileIdx, tile := range stage {
			fmt.Fprintf(w, "%stile %d\n", strings.Repeat(" ", 2), tileIdx)
			for subtileIdx, subtile := range tile {
				fmt.Fprintf(w, "%ssubtile %d  bbox first=%v last=%v\n",
					strings.Repeat(" ", 4), subtileIdx, subtile.First, subtile.Last)
				for halfTs, r := range subtile.Ranges {
					fmt.Fprintf(w, "%shalf-step %d  first=%v last=%v\n",
						strings.Repeat(" ", 6), halfTs, r.First, r.Last)
				}
			}
		}
	}
}
