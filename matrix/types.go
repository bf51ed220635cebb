// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container, the expression nodes
// and the evaluation protocol. This file contains ONLY types and tiny methods
// on them; behavior lives in dedicated files (impl_dense.go, expr_*.go,
// shape.go, materialize.go).
package matrix

// Scalar is the set of element types a Dense can hold and an expression can
// produce. Every member supports + - * / and unary negation natively.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind identifies the concrete shape behind an Expr.
// The set is closed: only this package can produce an Expr.
type Kind uint8

const (
	// KindMatrix is a concrete *Dense.
	KindMatrix Kind = iota + 1
	// KindUnary is a UnaryExpr node.
	KindUnary
	// KindBinary is a BinaryExpr node.
	KindBinary
)

// String returns a short lowercase name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Expr is anything with a matrix shape that can be queried element by
// element: a *Dense, a UnaryExpr or a BinaryExpr.
//
// Contract:
//   - Dims reports the shape. Nodes compute it lazily from their operands, so
//     a tree combining mismatched shapes fails here (ErrDimensionMismatch),
//     not at construction.
//   - At returns the element at (row, col), recursively forcing sub-trees.
//     Nothing is allocated on this path.
//
// Complexity: Dims is O(depth); At is O(nodes in the tree).
type Expr[T Scalar] interface {
	Dims() (rows, cols int, err error)
	At(row, col int) (T, error)
	Kind() Kind

	// sealed keeps the variant closed to {matrix, unary, binary}.
	sealed()
}

// Op is the stateless operation tag carried by a node.
// It carries no data; eval dispatches through a switch.
type Op uint8

const (
	// OpIdentity is reserved. Unary nodes reject it: a node must do real work.
	OpIdentity Op = iota
	// OpNeg is unary negation.
	OpNeg
	// OpAdd is element-wise addition.
	OpAdd
	// OpSub is element-wise subtraction.
	OpSub
	// OpMul is multiplication by a broadcast scalar.
	OpMul
	// OpDiv is division by a broadcast scalar.
	OpDiv
)

var opNames = [...]string{
	OpIdentity: "identity",
	OpNeg:      "neg",
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpDiv:      "div",
}

// String returns the tag name ("neg", "add", ...).
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}

	return "unknown"
}

// IsUnary reports whether op takes exactly one operand.
func (op Op) IsUnary() bool { return op == OpNeg }

// IsBinary reports whether op takes two operands.
func (op Op) IsBinary() bool { return op >= OpAdd && op <= OpDiv }

// apply1 evaluates a unary tag on one element.
func apply1[T Scalar](op Op, x T) T {
	switch op {
	case OpNeg:
		return -x
	default:
		return x
	}
}

// apply2 evaluates a binary tag on one pair of elements.
// Division follows T's native semantics: ±Inf/NaN for floats, a run-time
// panic for integer division by zero.
func apply2[T Scalar](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return a
	}
}
