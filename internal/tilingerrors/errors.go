// Package tilingerrors defines the error kinds shared by the
// planner, driver, field indexer, and verification harness.
package tilingerrors

import "fmt"

// ArgumentError reports malformed CLI input or a planner constraint
// violated by the caller's (W, T, H) inputs, e.g. H odd or H/2 too
// large for the requested tile width.
type ArgumentError struct {
	Flag   string
	Reason string
}

func (e ArgumentError) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("argument error: %s", e.Reason)
	}
	return fmt.Sprintf("argument error: %s: %s", e.Flag, e.Reason)
}

// GeometryError reports a failure in the geometry of a plan itself:
// temporal misalignment during 3D combination, a shift underflowing
// the left boundary, or a terminal trapezoid tile that can't be
// merged into its neighbor.
type GeometryError struct {
	Op     string
	Reason string
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("geometry error in %s: %s", e.Op, e.Reason)
}

// OutOfBoundsError reports an access outside a Field's declared
// shape. This is always a programming bug: the planner itself never
// produces an out-of-range index, so this only fires when a driver
// violates the plan iterator contract.
type OutOfBoundsError struct {
	Index [4]int
	Shape [4]int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"out of bounds: index %v outside shape %v",
		e.Index, e.Shape,
	)
}

// VerificationFailureError reports the first cell at which the tiled
// executor's result diverges from the reference executor's.
type VerificationFailureError struct {
	Field              string
	I, J, K, N         int
	Expected, Received string
}

func (e VerificationFailureError) Error() string {
	return fmt.Sprintf(
		"%s(i=%d,j=%d,k=%d,n=%d) verification failed: expected %s, received %s",
		e.Field, e.I, e.J, e.K, e.N, e.Expected, e.Received,
	)
}
