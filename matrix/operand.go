// SPDX-License-Identifier: MIT

package matrix

// capture is the storage mode of an Operand.
type capture uint8

const (
	captureScalar capture = iota + 1 // broadcast scalar, held by value
	captureValue                     // expression owned by the node
	captureRef                       // back-reference to an expression the caller owns
)

// Operand is one input slot of an expression node: a closed variant over
// {broadcast scalar, owned expression, non-owning back-reference}.
//
// Ownership rules:
//   - Val hands e over to the node. The caller should treat e as consumed;
//     for a *Dense that means "do not write to it afterwards".
//   - Ref borrows e. The caller keeps ownership and may keep using it, and any
//     write made before the next evaluation is observed by that evaluation.
//     Writes made DURING an evaluation (e.g. from another goroutine while
//     Materialize with WithWorkers runs) are a data race.
//   - Scalar operands are only minted by Mul, ScalarMul and Div, so two
//     scalars never meet in one node through the operator surface.
//
// Unwrap gives downstream code one uniform view regardless of the mode.
type Operand[T Scalar] struct {
	mode   capture
	scalar T
	expr   Expr[T]
}

// Val captures e by value (the node owns it).
func Val[T Scalar](e Expr[T]) Operand[T] {
	return Operand[T]{mode: captureValue, expr: e}
}

// Ref captures e by non-owning back-reference. e must stay alive and
// unmodified for as long as an evaluation over the tree is in flight.
// To borrow a node rather than a matrix, pass its address (Ref(&node)).
func Ref[T Scalar](e Expr[T]) Operand[T] {
	return Operand[T]{mode: captureRef, expr: e}
}

// scalarOperand wraps a broadcast scalar.
func scalarOperand[T Scalar](v T) Operand[T] {
	return Operand[T]{mode: captureScalar, scalar: v}
}

// autoCapture picks the mode the operator surface uses for e:
// a *Dense is a matrix the caller names and owns, so it is borrowed;
// nodes are small values built for this call, so they are owned.
func autoCapture[T Scalar](e Expr[T]) Operand[T] {
	if _, ok := e.(*Dense[T]); ok {
		return Ref(e)
	}

	return Val(e)
}

// IsScalar reports whether the slot holds a broadcast scalar.
func (o Operand[T]) IsScalar() bool { return o.mode == captureScalar }

// IsRef reports whether the slot is a non-owning back-reference.
func (o Operand[T]) IsRef() bool { return o.mode == captureRef }

// Scalar returns the broadcast value and true, or (0, false) for
// matrix-shaped slots.
func (o Operand[T]) Scalar() (T, bool) {
	if o.mode != captureScalar {
		return 0, false
	}

	return o.scalar, true
}

// Unwrap returns the underlying expression for matrix-shaped slots, whether
// owned or borrowed, and nil for scalar slots.
func (o Operand[T]) Unwrap() Expr[T] {
	switch o.mode {
	case captureValue, captureRef:
		return o.expr
	default:
		return nil
	}
}

// valid reports whether a matrix-shaped slot actually points somewhere.
// The zero Operand and Val(nil)/Ref(nil) are invalid.
func (o Operand[T]) valid() bool {
	switch o.mode {
	case captureScalar:
		return true
	case captureValue, captureRef:
		return !isNilExpr(o.expr)
	default:
		return false
	}
}

// isNilExpr catches both a nil interface and a typed nil *Dense.
func isNilExpr[T Scalar](e Expr[T]) bool {
	if e == nil {
		return true
	}
	if d, ok := e.(*Dense[T]); ok && d == nil {
		return true
	}

	return false
}
