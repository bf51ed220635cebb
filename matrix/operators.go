// SPDX-License-Identifier: MIT
// Package matrix — public arithmetic surface.
//
// Purpose:
//   - Glue user-facing calls to node construction. Every function here is
//     O(1): it only wraps operands, never touches elements.
//   - Pick the capture mode automatically: a *Dense operand is borrowed
//     (Ref), a node operand is owned (Val). Use NewUnary/NewBinary with
//     Val/Ref directly to override.
//
// Determinism & Policy:
//   - Matrix-shaped operands are typed as Expr[T] and scalars as T, so a
//     scalar-scalar node cannot be spelled here.
//   - Shape agreement is checked lazily (Dims / Materialize), never here.
//   - Division by zero is not intercepted; see apply2.
//
// Example, for the infix form (2*-m1 + m2)/2 + m2 - 3*m3:
//
//	r := ScalarMul[float64](2, m1.Neg()).Add(m2).Div(2).Add(m2).Sub(ScalarMul[float64](3, m3))
//	out, err := r.Materialize()

package matrix

// Neg returns the lazy node -x.
func Neg[T Scalar](x Expr[T]) UnaryExpr[T] {
	return UnaryExpr[T]{x: autoCapture(x), op: OpNeg}
}

// Add returns the lazy node lhs + rhs. Shapes must match at evaluation.
func Add[T Scalar](lhs, rhs Expr[T]) BinaryExpr[T] {
	return BinaryExpr[T]{lhs: autoCapture(lhs), rhs: autoCapture(rhs), op: OpAdd}
}

// Sub returns the lazy node lhs - rhs. Shapes must match at evaluation.
func Sub[T Scalar](lhs, rhs Expr[T]) BinaryExpr[T] {
	return BinaryExpr[T]{lhs: autoCapture(lhs), rhs: autoCapture(rhs), op: OpSub}
}

// Mul returns the lazy node x * s, with s broadcast to x's shape.
func Mul[T Scalar](x Expr[T], s T) BinaryExpr[T] {
	return BinaryExpr[T]{lhs: autoCapture(x), rhs: scalarOperand(s), op: OpMul}
}

// ScalarMul returns the lazy node s * x. The scalar stays on the left so the
// tree mirrors the written order.
func ScalarMul[T Scalar](s T, x Expr[T]) BinaryExpr[T] {
	return BinaryExpr[T]{lhs: scalarOperand(s), rhs: autoCapture(x), op: OpMul}
}

// Div returns the lazy node x / s. s == 0 is allowed and yields whatever T's
// division produces at evaluation time.
func Div[T Scalar](x Expr[T], s T) BinaryExpr[T] {
	return BinaryExpr[T]{lhs: autoCapture(x), rhs: scalarOperand(s), op: OpDiv}
}

// ---------- Fluent methods on *Dense (receiver is borrowed) ----------

// Neg returns -m. m is captured by reference.
func (m *Dense[T]) Neg() UnaryExpr[T] { return Neg[T](m) }

// Add returns m + rhs. m is captured by reference.
func (m *Dense[T]) Add(rhs Expr[T]) BinaryExpr[T] { return Add[T](m, rhs) }

// Sub returns m - rhs. m is captured by reference.
func (m *Dense[T]) Sub(rhs Expr[T]) BinaryExpr[T] { return Sub[T](m, rhs) }

// Mul returns m * s. m is captured by reference.
func (m *Dense[T]) Mul(s T) BinaryExpr[T] { return Mul[T](m, s) }

// Div returns m / s. m is captured by reference.
func (m *Dense[T]) Div(s T) BinaryExpr[T] { return Div[T](m, s) }
