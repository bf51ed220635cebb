// SPDX-License-Identifier: MIT
// Package matrix - evaluation protocol.
//
// Purpose:
//   - rowsOf / colsOf: shape of the combination of two operands, either of
//     which (but not both) may be a broadcast scalar.
//   - elementAt: the single recursion point that forces one element of a
//     tree. Scalars broadcast; everything else delegates to Expr.At.
//
// Determinism & Performance:
//   - Pure functions; nothing here allocates on the success path.
//   - Shape checks run lazily whenever a node's Dims is queried, so a
//     malformed tree fails when materialized, not when built.

package matrix

import "fmt"

// dimOf returns the rows (wantRows) or cols of a matrix-shaped operand.
func dimOf[T Scalar](o Operand[T], wantRows bool) (int, error) {
	r, c, err := o.Unwrap().Dims()
	if err != nil {
		return 0, err
	}
	if wantRows {
		return r, nil
	}

	return c, nil
}

// combinedDim implements the shared rule behind rowsOf and colsOf.
//
// Rules:
//   - lhs scalar ⇒ rhs's dimension.
//   - rhs scalar ⇒ lhs's dimension.
//   - both matrix-shaped ⇒ dimensions must agree (ErrDimensionMismatch).
//   - both scalar ⇒ ErrBothScalar.
func combinedDim[T Scalar](lhs, rhs Operand[T], wantRows bool, axis string) (int, error) {
	switch {
	case lhs.IsScalar() && rhs.IsScalar():
		return 0, ErrBothScalar
	case lhs.IsScalar():
		return dimOf(rhs, wantRows)
	case rhs.IsScalar():
		return dimOf(lhs, wantRows)
	}

	a, err := dimOf(lhs, wantRows)
	if err != nil {
		return 0, err
	}
	b, err := dimOf(rhs, wantRows)
	if err != nil {
		return 0, err
	}
	if a != b {
		return 0, fmt.Errorf("%s %d vs %d: %w", axis, a, b, ErrDimensionMismatch)
	}

	return a, nil
}

// rowsOf returns the row count of lhs ⊕ rhs.
func rowsOf[T Scalar](lhs, rhs Operand[T]) (int, error) {
	return combinedDim(lhs, rhs, true, "rows")
}

// colsOf returns the column count of lhs ⊕ rhs.
func colsOf[T Scalar](lhs, rhs Operand[T]) (int, error) {
	return combinedDim(lhs, rhs, false, "cols")
}

// elementAt forces operand o at (row, col). A scalar yields itself at every
// position (broadcast); a matrix-shaped operand recurses through its At.
func elementAt[T Scalar](o Operand[T], row, col int) (T, error) {
	if v, ok := o.Scalar(); ok {
		return v, nil
	}

	return o.Unwrap().At(row, col)
}
