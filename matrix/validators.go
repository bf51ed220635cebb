// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors wrapped only with the validator tag so call sites
//    can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//  - ValidateExpr costs O(nodes): it walks Dims, never elements.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the expression reference is non-nil
// (nil interface or typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil[T Scalar](e Expr[T]) error {
	if isNilExpr(e) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateExpr checks a tree eagerly: every shape rule that Materialize would
// hit is evaluated now. Use it to fail fast right after building a tree.
// Complexity: O(nodes).
func ValidateExpr[T Scalar](e Expr[T]) error {
	if err := ValidateNotNil(e); err != nil {
		return validatorErrorf("ValidateExpr", err)
	}
	if _, _, err := e.Dims(); err != nil {
		return validatorErrorf("ValidateExpr", err)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes non-nil inputs; see ValidateBinarySameShape for the composite.
// Complexity: O(nodes) for expressions, O(1) for matrices.
func ValidateSameShape[T Scalar](a, b Expr[T]) error {
	ar, ac, err := a.Dims()
	if err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	br, bc, err := b.Dims()
	if err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Scalar](a, b Expr[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
