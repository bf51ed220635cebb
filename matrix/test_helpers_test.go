// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the container and trees.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matexpr/matrix"
)

// MustDense ALLOCATES an r×c zero *Dense[float64] or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Fatal if len(vals) != r*c or any Set fails.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense[float64] {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomDense FILLS an r×c matrix with deterministic U(-1,1) values by seed.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t *testing.T, m *matrix.Dense[float64], i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS (i,j) from any expression or fails the test.
func MustAt(t *testing.T, e matrix.Expr[float64], i, j int) float64 {
	t.Helper()
	v, err := e.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMaterialize EVALUATES e or fails the test.
func MustMaterialize(t *testing.T, e matrix.Expr[float64], opts ...matrix.Option) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.Materialize(e, opts...)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	return m
}

// CompareExact ASSERTS strict equality between an expression and a 2D literal.
// Fails with the exact mismatch location.
func CompareExact(t *testing.T, want [][]float64, e matrix.Expr[float64]) {
	t.Helper()
	r, c, err := e.Dims()
	if err != nil {
		t.Fatalf("Dims: %v", err)
	}
	if r != len(want) {
		t.Fatalf("rows: got %d want %d", r, len(want))
	}
	var i, j int
	for i = 0; i < r; i++ {
		if c != len(want[i]) {
			t.Fatalf("cols in row %d: got %d want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if got := MustAt(t, e, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: got %v want %v", i, j, got, want[i][j])
			}
		}
	}
}

// eagerAdd / eagerScale are element loops used as the eager reference when
// checking that lazy trees agree with step-by-step evaluation.
func eagerAdd(t *testing.T, a, b *matrix.Dense[float64], sign float64) *matrix.Dense[float64] {
	t.Helper()
	out := MustDense(t, a.Rows(), a.Cols())
	a.Do(func(i, j int, v float64) bool {
		MustSet(t, out, i, j, v+sign*MustAt(t, b, i, j))
		return true
	})

	return out
}

func eagerScale(t *testing.T, a *matrix.Dense[float64], s float64) *matrix.Dense[float64] {
	t.Helper()
	out := MustDense(t, a.Rows(), a.Cols())
	a.Do(func(i, j int, v float64) bool {
		MustSet(t, out, i, j, v*s)
		return true
	})

	return out
}
