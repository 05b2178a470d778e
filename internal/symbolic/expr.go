// Package symbolic implements the minimal non-commutative expression
// tree the verification harness needs in place of a full
// computer-algebra system. It performs no simplification: structural
// equality of unevaluated trees is exactly what catches a cell read
// at the wrong point in the leap-frog schedule as an inequality.
package symbolic

import "fmt"

// Kind tags the shape of an Expr node.
type Kind int

const (
	Leaf Kind = iota
	Mul
	Add
	Sub
)

// Expr is one node of a symbolic expression tree. Leaf nodes carry a
// Name; Mul/Add/Sub nodes carry Left and Right operands. Order of
// construction is preserved; there is no commutative reordering or
// algebraic simplification, since the harness relies on structural
// inequality to detect misordered reads.
type Expr struct {
	Kind        Kind
	Name        string
	Left, Right *Expr
}

// NewSymbol creates a leaf expression with the given printed name.
// The caller is expected to encode the symbol's array and address
// into the name, e.g. "volt(3,1,2,0)", so a verification failure's
// rendered trees are self-describing.
func NewSymbol(name string) *Expr {
	return &Expr{Kind: Leaf, Name: name}
}

func binary(kind Kind, a, b *Expr) *Expr {
	return &Expr{Kind: kind, Left: a, Right: b}
}

// MulExpr returns a*b, preserving operand order.
func MulExpr(a, b *Expr) *Expr { return binary(Mul, a, b) }

// AddExpr returns a+b, preserving operand order.
func AddExpr(a, b *Expr) *Expr { return binary(Add, a, b) }

// SubExpr returns a-b, preserving operand order.
func SubExpr(a, b *Expr) *Expr { return binary(Sub, a, b) }

// String renders the expression as a fully parenthesized infix
// expression, for error messages and debug dumps only.
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case Leaf:
		return e.Name
	case Mul:
		return fmt.Sprintf("(%s * %s)", e.Left, e.Right)
	case Add:
		return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
	case Sub:
		return fmt.Sprintf("(%s - %s)", e.Left, e.Right)
	default:
		return "<invalid>"
	}
}
