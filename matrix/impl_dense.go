// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Act as the leaf of every expression tree (a *Dense is itself an Expr).
//   - Keep value-style semantics explicit: Clone copies, Swap moves.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set: O(1); Clone: O(r*c); Swap: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"          // method tag used in error wrappers
	ctxSet     = "Set"         // method tag used in error wrappers
	ctxNew     = "NewDense"    // ctor tag
	ctxFilled  = "NewFilled"   // ctor tag
	ctxRows    = "NewFromRows" // ctor tag
	ctxMustRow = "MustFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense with r*c == 0 is "empty". The zero value is a valid empty matrix.
type Dense[T Scalar] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Expr[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer  = (*Dense[float64])(nil)
)

// NewEmpty returns a 0×0 matrix. Equivalent to new(Dense[T]).
func NewEmpty[T Scalar]() *Dense[T] {
	return &Dense[T]{}
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - 0×N and N×0 are legal and produce an empty matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
// Complexity: O(r*c).
func NewFilled[T Scalar](rows, cols int, fill T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFilled, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewFromRows builds a matrix from nested per-row literals.
//
// Implementation:
//   - Stage 1: no rows ⇒ empty 0×0 matrix.
//   - Stage 2: every row must have len(rows[0]) elements; else ErrRaggedRows.
//   - Stage 3: copy rows into a single flat buffer (input slices are not retained).
//
// Errors:
//   - ErrRaggedRows, wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewEmpty[T](), nil
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxRows, i, len(row), c, ErrRaggedRows)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// MustFromRows is like NewFromRows but panics on ragged input.
// Intended for literals in examples and tests, mirroring regexp.MustCompile.
func MustFromRows[T Scalar](rows [][]T) *Dense[T] {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(ctxMustRow + ": " + err.Error())
	}

	return m
}

// NewRowVector returns a 1×len(vec) matrix holding a copy of vec.
// An empty vec yields a 1×0 (empty) matrix.
func NewRowVector[T Scalar](vec []T) *Dense[T] {
	buf := make([]T, len(vec))
	copy(buf, vec)

	return &Dense[T]{r: 1, c: len(vec), data: buf}
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Empty reports whether the matrix holds no elements.
func (m *Dense[T]) Empty() bool { return len(m.data) == 0 }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// Dims implements Expr. A concrete matrix always knows its shape.
func (m *Dense[T]) Dims() (rows, cols int, err error) {
	if m == nil {
		return 0, 0, ErrNilMatrix
	}

	return m.r, m.c, nil
}

// Kind implements Expr.
func (m *Dense[T]) Kind() Kind { return KindMatrix }

func (m *Dense[T]) sealed() {}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap with coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//   - Allocation-free; this is the bottom of every expression evaluation.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations on the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Raw returns a copy of the row-major buffer.
func (m *Dense[T]) Raw() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Swap exchanges the full state of m and other in O(1): no element is copied,
// only the buffer headers and dimensions change hands. Both matrices remain
// valid and independently usable afterwards.
func (m *Dense[T]) Swap(other *Dense[T]) {
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only, allocation-free.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
