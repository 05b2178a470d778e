// Package counterfield implements a counter-based sanity kernel: a
// cheap, non-symbolic stand-in for the real electromagnetic stencil.
// Fields hold monotonically increasing uint32 generation counters
// instead of field values; the same read/write footprint as the real
// kernel is exercised, and a tiled run is checked against the
// generation-consistency invariant the leap-frog schedule guarantees,
// instead of a physical result.
package counterfield

import (
	"fmt"

	"github.com/biergaizi/project-diamond/internal/geom"
)

// prevIndex clamps i-1 to the boundary at 0, matching emfield's
// boundary-clamp rule.
func prevIndex(i int) int {
	if i > 0 {
		return i - 1
	}
	return 0
}

// UpdateVoltageKernel increments volt(i,j,k) and, away from the
// boundary, asserts that curr's three relevant neighbors share one
// generation and that volt's new generation is exactly one ahead of
// it. This mirrors the read set of the real voltage kernel without
// doing real arithmetic.
func UpdateVoltageKernel(volt, curr *geom.Field[uint32], i, j, k int) error {
	prevI, prevJ, prevK := prevIndex(i), prevIndex(j), prevIndex(k)

	voltGen := volt.Get(i, j, k, 0)

	currCiCjCk := curr.Get(i, j, k, 0)
	currCiCjPk := curr.Get(i, j, prevK, 0)
	currCiPjCk := curr.Get(i, prevJ, k, 0)
	currPiCjCk := curr.Get(prevI, j, k, 0)

	voltGen++
	volt.Set(i, j, k, 0, voltGen)

	if prevI == 0 || prevJ == 0 || prevK == 0 {
		// the all-zero volt boundary is always up to date, don't check
		return nil
	}
	shape := curr.Shape()
	if i == shape[0]-1 || j == shape[1]-1 || k == shape[2]-1 {
		// the all-zero curr boundary is always up to date, don't check
		return nil
	}

	if !(currCiCjCk == currCiCjPk && currCiCjPk == currCiPjCk && currCiPjCk == currPiCjCk) {
		return fmt.Errorf(
			"checkVoltageKernel failed at (%d,%d,%d): curr neighbors are not equal: "+
				"curr(i,j,k)=%d curr(prev_i,j,k)=%d curr(i,prev_j,k)=%d curr(i,j,prev_k)=%d",
			i, j, k, currCiCjCk, currPiCjCk, currCiPjCk, currCiCjPk,
		)
	}

	if voltGen != currCiCjCk+1 {
		return fmt.Errorf(
			"checkVoltageKernel failed at (%d,%d,%d): expected %d, got %d",
			i, j, k, currCiCjCk+1, voltGen,
		)
	}
	return nil
}

// UpdateCurrentKernel increments curr(i,j,k) and asserts that volt's
// three relevant neighbors (at i,j,k+1; i,j+1,k; i+1,j,k) share one
// generation equal to curr's new generation, mirroring the leapfrog
// half-step-behind invariant.
func UpdateCurrentKernel(curr, volt *geom.Field[uint32], i, j, k int) error {
	currGen := curr.Get(i, j, k, 0)

	voltCiCjCk := volt.Get(i, j, k, 0)
	voltCiCjNk := volt.Get(i, j, k+1, 0)
	voltCiNjCk := volt.Get(i, j+1, k, 0)
	voltNiCjCk := volt.Get(i+1, j, k, 0)

	currGen++
	curr.Set(i, j, k, 0, currGen)

	if !(voltCiCjCk == voltCiCjNk && voltCiCjNk == voltCiNjCk && voltCiNjCk == voltNiCjCk) {
		return fmt.Errorf(
			"checkCurrentKernel failed at (%d,%d,%d): volt neighbors are not equal",
			i, j, k,
		)
	}

	if currGen != voltCiCjCk {
		return fmt.Errorf(
			"checkCurrentKernel failed at (%d,%d,%d): expected %d, got %d",
			i, j, k, voltCiCjCk, currGen,
		)
	}
	return nil
}

// UpdateVoltageRange applies UpdateVoltageKernel to every cell of
// [first, last], returning the first error encountered.
func UpdateVoltageRange(volt, curr *geom.Field[uint32], first, last [3]int) error {
	for i := first[0]; i <= last[0]; i++ {
		for j := first[1]; j <= last[1]; j++ {
			for k := first[2]; k <= last[2]; k++ {
				if err := UpdateVoltageKernel(volt, curr, i, j, k); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// UpdateCurrentRange applies UpdateCurrentKernel to every cell of
// [first, last], returning the first error encountered.
func UpdateCurrentRange(curr, volt *geom.Field[uint32], first, last [3]int) error {
	for i := first[0]; i <= last[0]; i++ {
		for j := first[1]; j <= last[1]; j++ {
			for k := first[2]; k <= last[2]; k++ {
				if err := UpdateCurrentKernel(curr, volt, i, j, k); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
