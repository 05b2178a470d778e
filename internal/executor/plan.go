// Package executor implements the reference and tiled drivers plus
// the symbolic and counter verification harnesses built on top of
// them.
package executor

import (
	"github.com/biergaizi/project-diamond/internal/tiling"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// AxisKind tags whether an axis is tiled with a trapezoid (two
// stages) or a parallelogram (one stage, serially dependent).
type AxisKind int

const (
	Trapezoid AxisKind = iota
	Parallelogram
)

// AxisConfig is one axis's grid width, tile width, and tile-shape
// kind, the per-axis unit the -g/-t flags bind into.
type AxisConfig struct {
	GridSize int
	TileSize int
	Kind     AxisKind
}

func (a AxisConfig) plan1D(height int) (tiling.Plan1D, error) {
	switch a.Kind {
	case Trapezoid:
		return tiling.ComputeTrapezoidTiles(a.GridSize, a.TileSize, height)
	case Parallelogram:
		return tiling.ComputeParallelogramTiles(a.GridSize, a.TileSize, height)
	default:
		return nil, tilingerrors.ArgumentError{Flag: "tile-size", Reason: "unknown axis kind"}
	}
}

// BuildPlan composes a 3D plan for one tile height from three axis
// configs, dispatching on I/J/K's kinds: I and J
// must be Trapezoid; K may be either, selecting CombineTTT or
// CombineTTP respectively.
func BuildPlan(i, j, k AxisConfig, height int) (tiling.Plan3D, error) {
	if i.Kind != Trapezoid || j.Kind != Trapezoid {
		return nil, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "axis i and axis j only support trapezoid tiling",
		}
	}

	planI, err := i.plan1D(height)
	if err != nil {
		return nil, err
	}
	planJ, err := j.plan1D(height)
	if err != nil {
		return nil, err
	}
	planK, err := k.plan1D(height)
	if err != nil {
		return nil, err
	}

	switch k.Kind {
	case Parallelogram:
		return tiling.CombineTTP(planI, planJ, planK)
	case Trapezoid:
		return tiling.CombineTTT(planI, planJ, planK)
	default:
		return nil, tilingerrors.ArgumentError{Flag: "tile-size", Reason: "unknown axis kind for axis k"}
	}
}

// Batching is the main-plan/remainder-plan split: a
// requested timestep count that isn't evenly divisible by H/2 is
// covered by running a height-H "main" plan NumBatches times, then a
// height-RemainderHeight "remainder" plan once, if RemainderHeight >
// 0.
type Batching struct {
	NumBatches      int
	RemainderHeight int
}

// ComputeBatching derives the batch/remainder split for timesteps
// total timesteps at tile height height: numBatches = 2T/H,
// remHalfTs = (T - numBatches*H/2) * 2.
func ComputeBatching(timesteps, height int) Batching {
	numBatches := (2 * timesteps) / height
	remHalfTs := (timesteps - (numBatches*height)/2) * 2
	return Batching{NumBatches: numBatches, RemainderHeight: remHalfTs}
}
