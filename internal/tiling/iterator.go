package tiling

import "github.com/biergaizi/project-diamond/internal/geom"

// HalfStepKind tags whether a subtile's half-step range is an
// electric (volt) or magnetic (curr) update.
type HalfStepKind int

const (
	Voltage HalfStepKind = iota
	Current
)

// StageVisitor is called once per stage, before any of the stage's
// tiles are visited. Returning an error aborts the walk.
type StageVisitor func(stageIndex int, stage TileList3D) error

// TileVisitor is called for every tile of a stage; tiles within a
// stage are mutually independent, so a caller driving real
// concurrency may invoke this concurrently across tiles
// of one stage, but must finish an entire stage's tiles before the
// walk proceeds to the next stage.
type TileVisitor func(stageIndex, tileIndex int, tile Tile3D) error

// HalfStepVisitor is called for every half-step range of every
// subtile, in subtile order then half-step order. kind reports
// whether the half-step is the electric or magnetic update.
type HalfStepVisitor func(kind HalfStepKind, r geom.Range3D) error

// Walk drives plan per the plan iterator contract: stages strictly
// in order, and the tiles of one stage in index order. If visitTile
// is set, each tile is handed to it and Walk does not visit the
// tile's half-steps itself; otherwise each tile's subtiles and
// half-steps are passed to visitHalfStep strictly in program order.
// Walk calls visitTile sequentially and does not wait for any work
// visitTile leaves running when it returns.
//
// visitStage and visitTile may be nil if the caller has no need for
// per-stage/per-tile hooks; visitHalfStep is required when visitTile
// is nil.
func Walk(plan Plan3D, visitStage StageVisitor, visitTile TileVisitor, visitHalfStep HalfStepVisitor) error {
	for stageIndex, stage := range plan {
		if visitStage != nil {
			if err := visitStage(stageIndex, stage); err != nil {
				return err
			}
		}

		for tileIndex, tile := range stage {
			if err := walkTile(stageIndex, tileIndex, tile, visitTile, visitHalfStep); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkTile(stageIndex, tileIndex int, tile Tile3D, visitTile TileVisitor, visitHalfStep HalfStepVisitor) error {
	if visitTile != nil {
		return visitTile(stageIndex, tileIndex, tile)
	}
	return walkTileHalfSteps(tile, visitHalfStep)
}

// walkTileHalfSteps visits one tile's subtiles in order and, within
// each, its half-steps in order, alternating voltage (even index)
// then current (odd index). WalkTile exports it so a concurrent
// driver's per-tile closure (submitted via visitTile) can still obey
// rules 3-4 internally.
func walkTileHalfSteps(tile Tile3D, visitHalfStep HalfStepVisitor) error {
	for _, subtile := range tile {
		for halfTs, r := range subtile.Ranges {
			kind := Voltage
			if halfTs%2 == 1 {
				kind = Current
			}
			if err := visitHalfStep(kind, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkTile exposes walkTileHalfSteps to drivers outside this package
// that implement their own concurrent visitTile and need to finish
// driving one tile's subtiles/half-steps in contract order.
func WalkTile(tile Tile3D, visitHalfStep HalfStepVisitor) error {
	return walkTileHalfSteps(tile, visitHalfStep)
}
