// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const ctxBinary = "BinaryExpr"

// BinaryExpr is a lazy node combining two operands with a binary Op.
// At most one operand is a broadcast scalar. Copying a BinaryExpr is O(1).
type BinaryExpr[T Scalar] struct {
	lhs, rhs Operand[T]
	op       Op
}

var _ Expr[float64] = BinaryExpr[float64]{}

// NewBinary builds a binary node with explicit capture modes.
//
// Errors (in priority order):
//   - ErrInvalidOp when op is not a binary tag.
//   - ErrNilMatrix when a slot is the zero Operand or wraps a nil expression.
//   - ErrBothScalar when both slots are scalars.
//
// Shapes are NOT compared here; see Dims.
func NewBinary[T Scalar](op Op, lhs, rhs Operand[T]) (BinaryExpr[T], error) {
	if !op.IsBinary() {
		return BinaryExpr[T]{}, fmt.Errorf("New%s(%s): %w", ctxBinary, op, ErrInvalidOp)
	}
	if !lhs.valid() || !rhs.valid() {
		return BinaryExpr[T]{}, fmt.Errorf("New%s(%s): %w", ctxBinary, op, ErrNilMatrix)
	}
	if lhs.IsScalar() && rhs.IsScalar() {
		return BinaryExpr[T]{}, fmt.Errorf("New%s(%s): %w", ctxBinary, op, ErrBothScalar)
	}

	return BinaryExpr[T]{lhs: lhs, rhs: rhs, op: op}, nil
}

// Op returns the node's operation tag.
func (b BinaryExpr[T]) Op() Op { return b.op }

// Left returns the left operand slot.
func (b BinaryExpr[T]) Left() Operand[T] { return b.lhs }

// Right returns the right operand slot.
func (b BinaryExpr[T]) Right() Operand[T] { return b.rhs }

// Kind implements Expr.
func (b BinaryExpr[T]) Kind() Kind { return KindBinary }

func (b BinaryExpr[T]) sealed() {}

func (b BinaryExpr[T]) check() error {
	if !b.op.IsBinary() {
		return ErrInvalidOp
	}
	if !b.lhs.valid() || !b.rhs.valid() {
		return ErrNilMatrix
	}

	return nil
}

// Dims combines the operands' shapes via rowsOf/colsOf.
// A mismatched tree reports ErrDimensionMismatch here.
func (b BinaryExpr[T]) Dims() (rows, cols int, err error) {
	if err = b.check(); err != nil {
		return 0, 0, fmt.Errorf("%s.Dims: %w", ctxBinary, err)
	}
	if rows, err = rowsOf(b.lhs, b.rhs); err != nil {
		return 0, 0, fmt.Errorf("%s(%s).Dims: %w", ctxBinary, b.op, err)
	}
	if cols, err = colsOf(b.lhs, b.rhs); err != nil {
		return 0, 0, fmt.Errorf("%s(%s).Dims: %w", ctxBinary, b.op, err)
	}

	return rows, cols, nil
}

// At evaluates both operands at (row, col) and combines them.
// Per-element evaluation does not re-check shapes; Materialize queries Dims
// once up front, and out-of-range reads still surface as ErrOutOfRange from
// the leaves.
func (b BinaryExpr[T]) At(row, col int) (T, error) {
	if err := b.check(); err != nil {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxBinary, row, col, err)
	}
	l, err := elementAt(b.lhs, row, col)
	if err != nil {
		return 0, err
	}
	r, err := elementAt(b.rhs, row, col)
	if err != nil {
		return 0, err
	}

	return apply2(b.op, l, r), nil
}

// Materialize evaluates the node into a new matrix. It stands in for an
// implicit node-to-matrix conversion.
func (b BinaryExpr[T]) Materialize(opts ...Option) (*Dense[T], error) {
	return Materialize[T](b, opts...)
}

// Neg returns -b.
func (b BinaryExpr[T]) Neg() UnaryExpr[T] { return Neg[T](b) }

// Add returns b + rhs.
func (b BinaryExpr[T]) Add(rhs Expr[T]) BinaryExpr[T] { return Add[T](b, rhs) }

// Sub returns b - rhs.
func (b BinaryExpr[T]) Sub(rhs Expr[T]) BinaryExpr[T] { return Sub[T](b, rhs) }

// Mul returns b * s.
func (b BinaryExpr[T]) Mul(s T) BinaryExpr[T] { return Mul[T](b, s) }

// Div returns b / s.
func (b BinaryExpr[T]) Div(s T) BinaryExpr[T] { return Div[T](b, s) }

// String renders the tree shape, e.g. "add(ref matrix, mul(neg(ref matrix), 2))".
func (b BinaryExpr[T]) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.op, describe(b.lhs), describe(b.rhs))
}

// describe renders one operand slot for String.
func describe[T Scalar](o Operand[T]) string {
	if v, ok := o.Scalar(); ok {
		return fmt.Sprintf("%v", v)
	}
	e := o.Unwrap()
	if e == nil {
		return "<nil>"
	}
	var s string
	if st, ok := e.(fmt.Stringer); ok && e.Kind() != KindMatrix {
		s = st.String()
	} else {
		s = e.Kind().String()
	}
	if o.IsRef() {
		return "ref " + s
	}

	return s
}
