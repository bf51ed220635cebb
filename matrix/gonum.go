// SPDX-License-Identifier: MIT
// Package matrix - gonum interop.
//
// Purpose:
//   - AsGonum exposes a float64 tree (or a Dense) as a gonum mat.Matrix
//     without materializing it, so lazy results can feed gonum routines.
//   - FromGonum copies any mat.Matrix into a Dense so it can join a tree.
//
// Notes:
//   - gonum's interface has no error returns and signals misuse by panicking;
//     the adapter follows that convention (the one place this package panics
//     on evaluation).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts Expr[float64] to mat.Matrix. Shape is fixed at creation.
type gonumView struct {
	e    Expr[float64]
	r, c int
}

var _ mat.Matrix = gonumView{}

// AsGonum validates e's shape once and returns a lazy mat.Matrix view.
// Each At call evaluates one element of the tree.
//
// Errors:
//   - ErrNilMatrix, or any shape error from e.Dims.
func AsGonum(e Expr[float64]) (mat.Matrix, error) {
	if err := ValidateExpr(e); err != nil {
		return nil, matrixErrorf("AsGonum", err)
	}
	r, c, _ := e.Dims()

	return gonumView{e: e, r: r, c: c}, nil
}

// Dims implements mat.Matrix.
func (g gonumView) Dims() (r, c int) { return g.r, g.c }

// At implements mat.Matrix. Panics with mat.ErrRowAccess / mat.ErrColAccess
// on bad indices, and with the evaluation error otherwise.
func (g gonumView) At(i, j int) float64 {
	if i < 0 || i >= g.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= g.c {
		panic(mat.ErrColAccess)
	}
	v, err := g.e.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("matrix: gonum view At(%d,%d): %v", i, j, err))
	}

	return v
}

// T implements mat.Matrix with gonum's lazy transpose wrapper.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies m into a new Dense[float64].
// Complexity: O(r*c).
func FromGonum(m mat.Matrix) (*Dense[float64], error) {
	if m == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out, nil
}
