// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"slices"
)

const (
	ctxEqualExpr = "EqualExpr"
	ctxAllClose  = "AllClose"
)

// Equal reports whether a and b are equal: both empty (whatever their stored
// zero dimensions, so 0×3 == 2×0), or identical shape and identical
// row-major contents. A nil *Dense counts as empty.
// Floating NaN never equals anything, including itself.
func Equal[T Scalar](a, b *Dense[T]) bool {
	aEmpty := a == nil || a.Empty()
	bEmpty := b == nil || b.Empty()
	if aEmpty || bEmpty {
		return aEmpty && bEmpty
	}

	return a.r == b.r && a.c == b.c && slices.Equal(a.data, b.data)
}

// Equal reports whether m equals other; see the package-level Equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool { return Equal(m, other) }

// EqualExpr materializes e and compares it with m. This is where a node
// stands in for a matrix in an equality test.
func EqualExpr[T Scalar](m *Dense[T], e Expr[T]) (bool, error) {
	got, err := materializeInto(e, identity[T], nil)
	if err != nil {
		return false, matrixErrorf(ctxEqualExpr, err)
	}

	return Equal(m, got), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Both sides may be unevaluated trees; elements are forced one at a time
// without materializing either side.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Complexity: O(r*c*nodes). Space: O(1).
func AllClose[T Scalar](a, b Expr[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(ctxAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}
	r, c, _ := a.Dims() // validated above

	var (
		i, j   int
		av, bv T
		err    error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(ctxAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(ctxAllClose, err)
			}
			if !closeEnough(float64(av), float64(bv), rtol, atol) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

func closeEnough(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
