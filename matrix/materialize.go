// SPDX-License-Identifier: MIT
// Package matrix - materialization.
//
// Purpose:
//   - Turn any Expr into a concrete *Dense: query Dims once, allocate one
//     buffer of rows*cols, evaluate every (row, col) in row-major order.
//   - This is the only place an expression tree does O(rows*cols) work and
//     the only place the result is allocated.
//
// Concurrency:
//   - With WithWorkers(n>1) rows are split into contiguous bands evaluated by
//     an errgroup. Bands are disjoint, so workers never share an output cell.
//     The first error cancels the remaining bands.
//
// Complexity:
//   - Time O(rows*cols*nodes), Space O(rows*cols) for the result only.

package matrix

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	ctxMaterialize   = "Materialize"
	ctxMaterializeAs = "MaterializeAs"
	ctxAssign        = "Dense.Assign"
)

// Materialize evaluates e into a newly allocated matrix of the same element type.
//
// Errors:
//   - ErrNilMatrix for a nil expression.
//   - Any error from e.Dims (ErrDimensionMismatch, ErrBothScalar, ...).
//   - Any error from e.At (ErrOutOfRange from a leaf, ...).
//   - ErrNaNInf under WithFiniteCheck.
//
// All errors are wrapped with "Materialize: " and match via errors.Is.
func Materialize[T Scalar](e Expr[T], opts ...Option) (*Dense[T], error) {
	out, err := materializeInto(e, identity[T], opts)
	if err != nil {
		return nil, matrixErrorf(ctxMaterialize, err)
	}

	return out, nil
}

// MaterializeAs evaluates e and converts each element to U using Go's
// numeric conversion rules (truncation toward zero for float→int).
// Use it when the result type must differ from the tree's element type.
func MaterializeAs[U, T Scalar](e Expr[T], opts ...Option) (*Dense[U], error) {
	out, err := materializeInto(e, func(v T) U { return U(v) }, opts)
	if err != nil {
		return nil, matrixErrorf(ctxMaterializeAs, err)
	}

	return out, nil
}

// Assign evaluates e and makes m hold the result, replacing m's shape and
// contents. The result is built in a fresh buffer and swapped in, so e may
// refer to m itself (m = m + other). On error m is left untouched.
func (m *Dense[T]) Assign(e Expr[T], opts ...Option) error {
	if m == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	tmp, err := materializeInto(e, identity[T], opts)
	if err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	m.Swap(tmp)

	return nil
}

func identity[T Scalar](v T) T { return v }

// materializeInto is the shared kernel behind Materialize/MaterializeAs/Assign.
func materializeInto[T, U Scalar](e Expr[T], conv func(T) U, opts []Option) (*Dense[U], error) {
	if isNilExpr(e) {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	// Shape is queried exactly once; every shape check in the tree runs here.
	rows, cols, err := e.Dims()
	if err != nil {
		return nil, err
	}
	out := &Dense[U]{r: rows, c: cols, data: make([]U, rows*cols)}
	if rows == 0 || cols == 0 {
		return out, nil
	}

	if o.workers <= 1 || rows == 1 {
		if err = evalRows(context.Background(), e, out, 0, rows, conv, o.finiteCheck); err != nil {
			return nil, err
		}

		return out, nil
	}

	workers := o.workers
	if workers > rows {
		workers = rows
	}
	band := (rows + workers - 1) / workers // ceil(rows/workers)

	g, ctx := errgroup.WithContext(context.Background())
	for lo := 0; lo < rows; lo += band {
		lo, hi := lo, lo+band
		if hi > rows {
			hi = rows
		}
		g.Go(func() error {
			return evalRows(ctx, e, out, lo, hi, conv, o.finiteCheck)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// evalRows fills rows [lo, hi) of out from e. It checks ctx between rows so
// a failing sibling band stops the others early.
func evalRows[T, U Scalar](ctx context.Context, e Expr[T], out *Dense[U], lo, hi int, conv func(T) U, finite bool) error {
	var (
		i, j, base int
		v          T
		err        error
	)
	for i = lo; i < hi; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		base = i * out.c
		for j = 0; j < out.c; j++ {
			if v, err = e.At(i, j); err != nil {
				return err
			}
			if finite && !isFinite(v) {
				return fmt.Errorf("element (%d,%d): %w", i, j, ErrNaNInf)
			}
			out.data[base+j] = conv(v)
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf. Integers always are.
func isFinite[T Scalar](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
