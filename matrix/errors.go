// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Validators return these sentinels bare; call sites wrap them with
// context via fmt.Errorf("Ctx: %w", ErrX) and tests match with errors.Is.
// The public surface never panics on user-triggered conditions; the only
// exceptions are MustFromRows and the gonum adapter (documented there).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> invalid op -> both-scalar -> dimension mismatch -> index range.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between the two
	// matrix-shaped operands of an element-wise combination.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows is returned when nested literal rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrBothScalar signals a binary node whose operands are both scalars.
	// The operator surface cannot build one; only NewBinary can report it.
	ErrBothScalar = errors.New("matrix: both operands are scalar")

	// ErrInvalidOp signals an operation tag that does not fit the node
	// (identity or binary tag on a unary node, unary tag on a binary node).
	ErrInvalidOp = errors.New("matrix: invalid operation for node")

	// ErrNilMatrix indicates that a nil matrix or expression was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf result under WithFiniteCheck.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with a call-site tag ("Materialize", "Assign", ...).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
