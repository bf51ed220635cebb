// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the evaluation protocol.
//
// Purpose:
//   - Expose UNEXPORTED protocol helpers (rowsOf, colsOf, elementAt) and the
//     resolved options to matrix_test ONLY.
//   - The file name ends in _test.go, so none of this exists in production builds.

// RowsOf_TestOnly forwards to rowsOf.
func RowsOf_TestOnly[T Scalar](lhs, rhs Operand[T]) (int, error) { return rowsOf(lhs, rhs) }

// ColsOf_TestOnly forwards to colsOf.
func ColsOf_TestOnly[T Scalar](lhs, rhs Operand[T]) (int, error) { return colsOf(lhs, rhs) }

// ElementAt_TestOnly forwards to elementAt.
func ElementAt_TestOnly[T Scalar](o Operand[T], row, col int) (T, error) {
	return elementAt(o, row, col)
}

// ScalarOperand_TestOnly mints a broadcast-scalar operand, which the public
// surface only does inside Mul/ScalarMul/Div.
func ScalarOperand_TestOnly[T Scalar](v T) Operand[T] { return scalarOperand(v) }

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Workers     int
	FiniteCheck bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Workers: o.workers, FiniteCheck: o.finiteCheck}
}

// PanicWorkersInvalid_TestOnly exports the panic message to avoid magic strings in tests.
const PanicWorkersInvalid_TestOnly = panicWorkersInvalid
