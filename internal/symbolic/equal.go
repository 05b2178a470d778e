package symbolic

import "github.com/google/go-cmp/cmp"

// Equal reports whether a and b are structurally identical expression
// trees: same operator at every node, same operand order, same leaf
// names. This is deliberately not mathematical equality: a*b and b*a
// are unequal, which is exactly the property the verification harness
// needs to catch a cell computed from a stale or out-of-order operand.
func Equal(a, b *Expr) bool {
	return cmp.Equal(a, b)
}

// Diff returns a human-readable structural diff between a and b; it
// is empty when the two trees are Equal.
func Diff(a, b *Expr) string {
	return cmp.Diff(a, b)
}
