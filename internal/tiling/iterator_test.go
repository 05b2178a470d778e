package tiling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biergaizi/project-diamond/internal/geom"
)

func buildTTPPlan(t *testing.T) Plan3D {
	t.Helper()
	trap := mustTrapezoid(t, 20, 8, 4)
	para := mustParallelogram(t, 20, 8, 4)
	plan, err := CombineTTP(trap, trap, para)
	require.NoError(t, err)
	return plan
}

func TestWalkOrder(t *testing.T) {
	plan := buildTTPPlan(t)

	var stages []int
	var kinds []HalfStepKind
	halfStepsPerStage := map[int]int{}

	err := Walk(plan,
		func(stageIndex int, stage TileList3D) error {
			stages = append(stages, stageIndex)
			return nil
		},
		nil,
		func(kind HalfStepKind, r geom.Range3D) error {
			halfStepsPerStage[stages[len(stages)-1]]++
			kinds = append(kinds, kind)
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, stages, "stages visited strictly in order")
	for stage := 0; stage < 4; stage++ {
		assert.Positive(t, halfStepsPerStage[stage], "every stage drives half-steps")
	}

	// half-steps alternate voltage then current within every subtile
	require.Equal(t, 0, len(kinds)%4)
	for n, kind := range kinds {
		if n%2 == 0 {
			assert.Equal(t, Voltage, kind)
		} else {
			assert.Equal(t, Current, kind)
		}
	}
}

func TestWalkTileSubtileOrder(t *testing.T) {
	plan := buildTTPPlan(t)
	tile := plan[0][0]
	require.Greater(t, len(tile), 1)

	var visited []geom.Range3D
	err := WalkTile(tile, func(kind HalfStepKind, r geom.Range3D) error {
		visited = append(visited, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, visited, len(tile)*len(tile[0].Ranges))

	// the visit sequence is subtile-major: each subtile's H ranges
	// appear as one contiguous run, subtiles in K order
	h := len(tile[0].Ranges)
	for st, subtile := range tile {
		assert.Equal(t, subtile.Ranges, visited[st*h:(st+1)*h])
	}
}

func TestWalkAbortsOnError(t *testing.T) {
	plan := buildTTPPlan(t)
	boom := errors.New("boom")

	calls := 0
	err := Walk(plan, nil, nil, func(kind HalfStepKind, r geom.Range3D) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls, "the walk stops at the first error")
}
