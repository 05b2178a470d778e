package tiling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualize(t *testing.T) {
	plan := mustTrapezoid(t, 20, 8, 4)

	var sb strings.Builder
	Visualize(&sb, plan, 20)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4, "one row per half-step")
	for _, line := range lines {
		assert.Len(t, line, 20, "one column per grid position")
	}

	// half-step 0 is the bottom row: mountains labelled from '0',
	// valleys from 'A', and the whole axis is claimed by some tile
	bottom := lines[len(lines)-1]
	assert.Contains(t, bottom, "0")
	assert.Contains(t, bottom, "A")
	assert.NotContains(t, bottom, "!")

	// the magnetic boundary cell at the top-most odd half-step stays
	// unclaimed
	top := lines[0]
	assert.NotEqual(t, byte('!'), top[0])
	assert.Equal(t, byte('!'), top[19])
}

func TestShapeHistogram(t *testing.T) {
	plan := buildTTPPlan(t)

	const elementSize, vectorComponents = 4, 3
	shapes, naive, overlapped := ShapeHistogram(plan, [3]int{20, 20, 20}, elementSize, vectorComponents)
	require.NotEmpty(t, shapes)

	totalSubtiles := 0
	wantOverlapped := 0
	for _, s := range shapes {
		totalSubtiles += s.Count
		wantOverlapped += s.I * s.J * s.K * vectorComponents * elementSize * 4 * s.Count
	}

	wantSubtiles := 0
	for _, stage := range plan {
		for _, tile := range stage {
			wantSubtiles += len(tile)
		}
	}
	assert.Equal(t, wantSubtiles, totalSubtiles, "histogram accounts for every subtile")
	assert.Equal(t, wantOverlapped, overlapped)
	assert.Equal(t, 20*20*20*vectorComponents*elementSize*4, naive)

	// shapes come out sorted for stable output
	for n := 1; n < len(shapes); n++ {
		a, b := shapes[n-1], shapes[n]
		assert.True(t, a.I < b.I || (a.I == b.I && (a.J < b.J || (a.J == b.J && a.K < b.K))))
	}

	mean, stddev := ShapeStats(shapes, elementSize, vectorComponents)
	assert.Positive(t, mean)
	assert.GreaterOrEqual(t, stddev, 0.0)
}

func TestEstimateTraffic(t *testing.T) {
	plan := buildTTPPlan(t)
	const elementSize, vectorComponents = 4, 3

	plain := EstimateTraffic(plan, elementSize, vectorComponents, false)
	sliding := EstimateTraffic(plan, elementSize, vectorComponents, true)

	assert.Positive(t, plain)
	assert.Less(t, sliding, plain,
		"the sliding window only re-reads the newly exposed K slice")

	t.Run("naive traffic", func(t *testing.T) {
		got := EstimateNaiveTraffic([3]int{20, 20, 20}, elementSize, vectorComponents, 100)
		assert.Equal(t, 20*20*20*vectorComponents*elementSize*10*100, got)
	})
}

func TestDumpPlan3D(t *testing.T) {
	plan := buildTTPPlan(t)

	var sb strings.Builder
	DumpPlan3D(&sb, plan)
	out := sb.String()

	assert.Contains(t, out, "stage 0\n")
	assert.Contains(t, out, "stage 3\n")
	assert.Contains(t, out, "subtile 0")
	assert.Contains(t, out, "half-step 0")
}
