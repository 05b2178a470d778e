package executor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/tiling"
	"github.com/biergaizi/project-diamond/internal/tilerunner"
)

// RangeUpdate applies one half-step's update to every cell of the
// inclusive box [first, last]. Both the symbolic stencil
// (internal/emfield) and the counter sanity kernel
// (internal/counterfield) are bound into this signature by their
// respective harness.
type RangeUpdate func(first, last [3]int) error

// RunReference drives the naive, strictly-ordered reference sweep:
// for each of timesteps iterations, the full voltage
// box then the full current box (which is the voltage box shrunk by
// one on every axis, since the magnetic boundary cell depends on a
// cell outside the grid).
func RunReference(timesteps int, gridSize [3]int, updateVoltage, updateCurrent RangeUpdate) error {
	first := [3]int{0, 0, 0}
	voltLast := [3]int{gridSize[0] - 1, gridSize[1] - 1, gridSize[2] - 1}
	currLast := [3]int{gridSize[0] - 2, gridSize[1] - 2, gridSize[2] - 2}

	for t := 0; t < timesteps; t++ {
		if err := updateVoltage(first, voltLast); err != nil {
			return err
		}
		if err := updateCurrent(first, currLast); err != nil {
			return err
		}
	}
	return nil
}

// TiledDriver drives a 3D plan per the plan iterator contract: each
// stage's tiles are submitted to a fresh
// tilerunner.Pool capped at Workers, and the pool is drained (the
// stage barrier) before the next stage's tiles are submitted.
// Within one tile, tiling.WalkTile keeps subtiles and half-steps in
// program order.
type TiledDriver struct {
	Workers int
	Dump    bool
	Logger  *logrus.Logger
}

func (d TiledDriver) visitor(updateVoltage, updateCurrent RangeUpdate) tiling.HalfStepVisitor {
	return func(kind tiling.HalfStepKind, r geom.Range3D) error {
		if kind == tiling.Voltage {
			return updateVoltage(r.First, r.Last)
		}
		return updateCurrent(r.First, r.Last)
	}
}

// RunBatch drives plan once: each stage's tiles are submitted to a
// pool capped at d.Workers and the pool is drained before the next
// stage begins, implementing the inter-stage barrier. Within a tile,
// tiling.WalkTile keeps subtiles and half-steps in program order.
func (d TiledDriver) RunBatch(ctx context.Context, plan tiling.Plan3D, updateVoltage, updateCurrent RangeUpdate) error {
	visit := d.visitor(updateVoltage, updateCurrent)

	for stageIndex, stage := range plan {
		if d.Dump && d.Logger != nil {
			d.Logger.WithFields(logrus.Fields{
				"stage":      stageIndex,
				"tile_count": len(stage),
				"workers":    d.Workers,
			}).Info("entering stage")
		}

		pool := tilerunner.New(ctx, d.Workers)
		for _, tile := range stage {
			tile := tile
			pool.Submit(func() error {
				return tiling.WalkTile(tile, visit)
			})
		}
		if err := pool.Drain(); err != nil {
			return err
		}
	}
	return nil
}

// RunBatches runs the main+remainder batching scheme: a
// height-`height` plan NumBatches times, then (if RemainderHeight >
// 0) a height-RemainderHeight plan once. axes' TileSize/Kind stay
// fixed across both plans; only the height changes.
func (d TiledDriver) RunBatches(
	ctx context.Context,
	i, j, k AxisConfig,
	height, timesteps int,
	updateVoltage, updateCurrent RangeUpdate,
) error {
	batching := ComputeBatching(timesteps, height)

	mainPlan, err := BuildPlan(i, j, k, height)
	if err != nil {
		return err
	}
	for b := 0; b < batching.NumBatches; b++ {
		if err := d.RunBatch(ctx, mainPlan, updateVoltage, updateCurrent); err != nil {
			return err
		}
	}

	if batching.RemainderHeight > 0 {
		remPlan, err := BuildPlan(i, j, k, batching.RemainderHeight)
		if err != nil {
			return err
		}
		if err := d.RunBatch(ctx, remPlan, updateVoltage, updateCurrent); err != nil {
			return err
		}
	}
	return nil
}
