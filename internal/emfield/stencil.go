// Package emfield implements the symbolic electromagnetic leap-frog
// stencil: the voltage (electric) and current (magnetic) update
// kernels applied cell-by-cell over a symbolic expression algebra
// instead of floating-point numbers, so the verification harness can
// detect a cell read at the wrong point in the schedule as a
// structural inequality rather than a floating-point coincidence.
package emfield

import (
	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/symbolic"
)

// prevIndex clamps i-1 to the boundary at 0.
func prevIndex(i int) int {
	if i > 0 {
		return i - 1
	}
	return 0
}

// UpdateVoltageKernel applies the electric half-step update to one
// cell (i,j,k), reading the magnetic field's just-written neighbors
// and the read-only coefficient fields vv (self) and vi (coupling).
func UpdateVoltageKernel(
	volt, curr *geom.Field[*symbolic.Expr],
	vv, vi *geom.Field[*symbolic.Expr],
	i, j, k int,
) {
	prevI, prevJ, prevK := prevIndex(i), prevIndex(j), prevIndex(k)

	volt0 := volt.Get(i, j, k, 0)
	volt1 := volt.Get(i, j, k, 1)
	volt2 := volt.Get(i, j, k, 2)

	vv0 := vv.Get(i, j, k, 0)
	vv1 := vv.Get(i, j, k, 1)
	vv2 := vv.Get(i, j, k, 2)

	vi0 := vi.Get(i, j, k, 0)
	vi1 := vi.Get(i, j, k, 1)
	vi2 := vi.Get(i, j, k, 2)

	curr0CiCjCk := curr.Get(i, j, k, 0)
	curr1CiCjCk := curr.Get(i, j, k, 1)
	curr2CiCjCk := curr.Get(i, j, k, 2)
	curr0CiCjPk := curr.Get(i, j, prevK, 0)
	curr1CiCjPk := curr.Get(i, j, prevK, 1)
	curr0CiPjCk := curr.Get(i, prevJ, k, 0)
	curr2CiPjCk := curr.Get(i, prevJ, k, 2)
	curr1PiCjCk := curr.Get(prevI, j, k, 1)
	curr2PiCjCk := curr.Get(prevI, j, k, 2)

	volt0 = symbolic.MulExpr(volt0, vv0)
	volt0 = symbolic.AddExpr(volt0, symbolic.MulExpr(vi0, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(curr2CiCjCk, curr2CiPjCk), curr1CiCjCk),
		curr1CiCjPk,
	)))

	volt1 = symbolic.MulExpr(volt1, vv1)
	volt1 = symbolic.AddExpr(volt1, symbolic.MulExpr(vi1, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(curr0CiCjCk, curr0CiCjPk), curr2CiCjCk),
		curr2PiCjCk,
	)))

	volt2 = symbolic.MulExpr(volt2, vv2)
	volt2 = symbolic.AddExpr(volt2, symbolic.MulExpr(vi2, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(curr1CiCjCk, curr1PiCjCk), curr0CiCjCk),
		curr0CiPjCk,
	)))

	volt.Set(i, j, k, 0, volt0)
	volt.Set(i, j, k, 1, volt1)
	volt.Set(i, j, k, 2, volt2)
}

// UpdateCurrentKernel applies the magnetic half-step update to one
// cell (i,j,k), reading the electric field's just-written neighbors
// at i+1/j+1/k+1 and the read-only coefficient fields ii (self) and
// iv (coupling). Callers must restrict i,j,k to at most
// gridExtent-2 on every axis, since this kernel reads
// one cell past (i,j,k) on each axis.
func UpdateCurrentKernel(
	curr, volt *geom.Field[*symbolic.Expr],
	ii, iv *geom.Field[*symbolic.Expr],
	i, j, k int,
) {
	curr0 := curr.Get(i, j, k, 0)
	curr1 := curr.Get(i, j, k, 1)
	curr2 := curr.Get(i, j, k, 2)

	ii0 := ii.Get(i, j, k, 0)
	ii1 := ii.Get(i, j, k, 1)
	ii2 := ii.Get(i, j, k, 2)

	iv0 := iv.Get(i, j, k, 0)
	iv1 := iv.Get(i, j, k, 1)
	iv2 := iv.Get(i, j, k, 2)

	volt0CiCjCk := volt.Get(i, j, k, 0)
	volt1CiCjCk := volt.Get(i, j, k, 1)
	volt2CiCjCk := volt.Get(i, j, k, 2)
	volt0CiCjNk := volt.Get(i, j, k+1, 0)
	volt1CiCjNk := volt.Get(i, j, k+1, 1)
	volt0CiNjCk := volt.Get(i, j+1, k, 0)
	volt2CiNjCk := volt.Get(i, j+1, k, 2)
	volt1NiCjCk := volt.Get(i+1, j, k, 1)
	volt2NiCjCk := volt.Get(i+1, j, k, 2)

	curr0 = symbolic.MulExpr(curr0, ii0)
	curr0 = symbolic.AddExpr(curr0, symbolic.MulExpr(iv0, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(volt2CiCjCk, volt2CiNjCk), volt1CiCjCk),
		volt1CiCjNk,
	)))

	curr1 = symbolic.MulExpr(curr1, ii1)
	curr1 = symbolic.AddExpr(curr1, symbolic.MulExpr(iv1, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(volt0CiCjCk, volt0CiCjNk), volt2CiCjCk),
		volt2NiCjCk,
	)))

	curr2 = symbolic.MulExpr(curr2, ii2)
	curr2 = symbolic.AddExpr(curr2, symbolic.MulExpr(iv2, symbolic.AddExpr(
		symbolic.SubExpr(symbolic.SubExpr(volt1CiCjCk, volt1NiCjCk), volt0CiCjCk),
		volt0CiNjCk,
	)))

	curr.Set(i, j, k, 0, curr0)
	curr.Set(i, j, k, 1, curr1)
	curr.Set(i, j, k, 2, curr2)
}

// UpdateVoltageRange applies UpdateVoltageKernel to every cell of the
// inclusive box [first, last].
func UpdateVoltageRange(
	volt, curr *geom.Field[*symbolic.Expr],
	vv, vi *geom.Field[*symbolic.Expr],
	first, last [3]int,
) {
	for i := first[0]; i <= last[0]; i++ {
		for j := first[1]; j <= last[1]; j++ {
			for k := first[2]; k <= last[2]; k++ {
				UpdateVoltageKernel(volt, curr, vv, vi, i, j, k)
			}
		}
	}
}

// UpdateCurrentRange applies UpdateCurrentKernel to every cell of the
// inclusive box [first, last].
func UpdateCurrentRange(
	curr, volt *geom.Field[*symbolic.Expr],
	ii, iv *geom.Field[*symbolic.Expr],
	first, last [3]int,
) {
	for i := first[0]; i <= last[0]; i++ {
		for j := first[1]; j <= last[1]; j++ {
			for k := first[2]; k <= last[2]; k++ {
				UpdateCurrentKernel(curr, volt, ii, iv, i, j, k)
			}
		}
	}
}
