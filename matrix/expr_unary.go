// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const ctxUnary = "UnaryExpr"

// UnaryExpr is a lazy node applying a unary Op to one matrix-shaped operand.
// It owns nothing but its operand slot; copying a UnaryExpr is O(1).
type UnaryExpr[T Scalar] struct {
	x  Operand[T]
	op Op
}

var _ Expr[float64] = UnaryExpr[float64]{}

// NewUnary builds a unary node with an explicit capture mode for x.
//
// Errors:
//   - ErrInvalidOp when op is not a unary tag (OpIdentity included).
//   - ErrNilMatrix when x is empty or scalar-shaped: unary nodes need a matrix.
func NewUnary[T Scalar](op Op, x Operand[T]) (UnaryExpr[T], error) {
	if !op.IsUnary() {
		return UnaryExpr[T]{}, fmt.Errorf("New%s(%s): %w", ctxUnary, op, ErrInvalidOp)
	}
	if x.IsScalar() || !x.valid() {
		return UnaryExpr[T]{}, fmt.Errorf("New%s(%s): %w", ctxUnary, op, ErrNilMatrix)
	}

	return UnaryExpr[T]{x: x, op: op}, nil
}

// Op returns the node's operation tag.
func (u UnaryExpr[T]) Op() Op { return u.op }

// Operand returns the node's input slot.
func (u UnaryExpr[T]) Operand() Operand[T] { return u.x }

// Kind implements Expr.
func (u UnaryExpr[T]) Kind() Kind { return KindUnary }

func (u UnaryExpr[T]) sealed() {}

// check guards the node's internal consistency. The zero UnaryExpr carries
// OpIdentity and no operand; it must never evaluate.
func (u UnaryExpr[T]) check() error {
	if !u.op.IsUnary() {
		return ErrInvalidOp
	}
	if !u.x.valid() || u.x.IsScalar() {
		return ErrNilMatrix
	}

	return nil
}

// Dims delegates to the operand's shape.
func (u UnaryExpr[T]) Dims() (rows, cols int, err error) {
	if err = u.check(); err != nil {
		return 0, 0, fmt.Errorf("%s.Dims: %w", ctxUnary, err)
	}

	return u.x.Unwrap().Dims()
}

// At evaluates the operand at (row, col) and applies the op.
func (u UnaryExpr[T]) At(row, col int) (T, error) {
	if err := u.check(); err != nil {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxUnary, row, col, err)
	}
	v, err := elementAt(u.x, row, col)
	if err != nil {
		return 0, err
	}

	return apply1(u.op, v), nil
}

// Materialize evaluates the node into a new matrix. It stands in for an
// implicit node-to-matrix conversion.
func (u UnaryExpr[T]) Materialize(opts ...Option) (*Dense[T], error) {
	return Materialize[T](u, opts...)
}

// Neg returns -u.
func (u UnaryExpr[T]) Neg() UnaryExpr[T] { return Neg[T](u) }

// Add returns u + rhs.
func (u UnaryExpr[T]) Add(rhs Expr[T]) BinaryExpr[T] { return Add[T](u, rhs) }

// Sub returns u - rhs.
func (u UnaryExpr[T]) Sub(rhs Expr[T]) BinaryExpr[T] { return Sub[T](u, rhs) }

// Mul returns u * s.
func (u UnaryExpr[T]) Mul(s T) BinaryExpr[T] { return Mul[T](u, s) }

// Div returns u / s.
func (u UnaryExpr[T]) Div(s T) BinaryExpr[T] { return Div[T](u, s) }

// String renders the tree shape, e.g. "neg(ref matrix)".
func (u UnaryExpr[T]) String() string {
	return fmt.Sprintf("%s(%s)", u.op, describe(u.x))
}
