package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

func mustTrapezoid(t *testing.T, w, tw, h int) Plan1D {
	t.Helper()
	plan, err := ComputeTrapezoidTiles(w, tw, h)
	require.NoError(t, err)
	return plan
}

func mustParallelogram(t *testing.T, w, tw, h int) Plan1D {
	t.Helper()
	plan, err := ComputeParallelogramTiles(w, tw, h)
	require.NoError(t, err)
	return plan
}

// assertBoundingBoxes asserts every subtile's cached bounding box is
// the componentwise min/max over its member ranges.
func assertBoundingBoxes(t *testing.T, plan Plan3D) {
	t.Helper()
	for _, stage := range plan {
		for _, tile := range stage {
			for _, subtile := range tile {
				require.NotEmpty(t, subtile.Ranges)
				want := subtile.Ranges[0]
				for _, r := range subtile.Ranges[1:] {
					want = want.Union(r)
				}
				assert.Equal(t, want, subtile.BoundingBox())
			}
		}
	}
}

// assertStageFootprintsDisjoint asserts that within each stage, no
// two tiles share a cell of their half-step-0 spatial footprints.
func assertStageFootprintsDisjoint(t *testing.T, plan Plan3D) {
	t.Helper()
	overlap3D := func(a, b geom.Range3D) bool {
		for n := 0; n < 3; n++ {
			if a.Last[n] < b.First[n] || b.Last[n] < a.First[n] {
				return false
			}
		}
		return true
	}
	for stageIdx, stage := range plan {
		for a := 0; a < len(stage); a++ {
			for b := a + 1; b < len(stage); b++ {
				for _, sa := range stage[a] {
					for _, sb := range stage[b] {
						assert.False(t, overlap3D(sa.Ranges[0], sb.Ranges[0]),
							"stage %d tiles %d and %d overlap at half-step 0", stageIdx, a, b)
					}
				}
			}
		}
	}
}

func TestCombineTTT(t *testing.T) {
	const w, tw, h = 20, 8, 4
	planI := mustTrapezoid(t, w, tw, h)
	planJ := mustTrapezoid(t, w, tw, h)
	planK := mustTrapezoid(t, w, tw, h)

	plan, err := CombineTTT(planI, planJ, planK)
	require.NoError(t, err)
	require.Len(t, plan, 8, "TTT composition has 2^3 stages")

	for stage := 0; stage < 8; stage++ {
		wantTiles := len(planI[(stage>>2)&1]) * len(planJ[(stage>>1)&1]) * len(planK[stage&1])
		assert.Len(t, plan[stage], wantTiles)

		for _, tile := range plan[stage] {
			require.Len(t, tile, 1, "TTT tiles carry exactly one subtile")
			assert.Len(t, tile[0].Ranges, h)
		}
	}

	assertBoundingBoxes(t, plan)
	assertStageFootprintsDisjoint(t, plan)

	t.Run("stage 0 is the product of the three mountain lists", func(t *testing.T) {
		first := plan[0][0][0].Ranges[0]
		assert.Equal(t, geom.Range3D{
			First: [3]int{0, 0, 0},
			Last:  [3]int{tw - 1, tw - 1, tw - 1},
		}, first)
	})
}

func TestCombineTTP(t *testing.T) {
	const w, tw, h = 20, 8, 4
	planI := mustTrapezoid(t, w, tw, h)
	planJ := mustTrapezoid(t, w, tw, h)
	planK := mustParallelogram(t, w, tw, h)

	plan, err := CombineTTP(planI, planJ, planK)
	require.NoError(t, err)
	require.Len(t, plan, 4, "TTP composition has 2^2 stages")

	numK := len(planK[0])
	require.Greater(t, numK, 1)

	for stage := 0; stage < 4; stage++ {
		wantTiles := len(planI[(stage>>1)&1]) * len(planJ[stage&1])
		assert.Len(t, plan[stage], wantTiles)

		for _, tile := range plan[stage] {
			require.Len(t, tile, numK, "one subtile per K-parallelogram")

			// subtiles are the consecutive K-axis parallelograms of
			// one (I,J) column, in K order
			for st := 1; st < len(tile); st++ {
				prev := tile[st-1].Ranges[0]
				curr := tile[st].Ranges[0]
				assert.Equal(t, prev.Last[2]+1, curr.First[2])
				assert.Equal(t, prev.First[0], curr.First[0], "same I column")
				assert.Equal(t, prev.First[1], curr.First[1], "same J column")
			}

			for _, subtile := range tile {
				assert.Len(t, subtile.Ranges, h)
			}
		}
	}

	assertBoundingBoxes(t, plan)
	assertStageFootprintsDisjoint(t, plan)
}

func TestCombineErrors(t *testing.T) {
	trap := mustTrapezoid(t, 20, 8, 4)
	para := mustParallelogram(t, 20, 8, 4)

	t.Run("TTT rejects a one-stage axis", func(t *testing.T) {
		_, err := CombineTTT(trap, trap, para)
		require.Error(t, err)
		assert.ErrorAs(t, err, &tilingerrors.ArgumentError{})
	})

	t.Run("TTP rejects trapezoid K", func(t *testing.T) {
		_, err := CombineTTP(trap, trap, trap)
		require.Error(t, err)
		assert.ErrorAs(t, err, &tilingerrors.ArgumentError{})
	})

	t.Run("TTP rejects parallelogram I", func(t *testing.T) {
		_, err := CombineTTP(para, trap, para)
		require.Error(t, err)
		assert.ErrorAs(t, err, &tilingerrors.ArgumentError{})
	})

	t.Run("temporal misalignment", func(t *testing.T) {
		tall := mustTrapezoid(t, 20, 8, 6)
		_, err := CombineTTT(trap, trap, tall)
		require.Error(t, err)
		assert.ErrorAs(t, err, &tilingerrors.GeometryError{})

		_, errTTP := CombineTTP(trap, tall, para)
		require.Error(t, errTTP)
		assert.ErrorAs(t, errTTP, &tilingerrors.GeometryError{})
	})
}
