// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matexpr/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFilled[float64](5, -1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroSized verifies that 0×N and N×0 are legal empty matrices.
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense[float64](0, 5)
	require.NoError(t, err)
	require.True(t, m.Empty())
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())

	var zero matrix.Dense[int]
	require.True(t, zero.Empty())
	require.True(t, matrix.NewEmpty[int]().Empty())
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the construction shape.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	require.Equal(t, rows*cols, m.Len())
	require.False(t, m.Empty())
}

// TestNewFilled checks every element carries the fill value.
func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, int32(7))
	require.NoError(t, err)
	require.Equal(t, []int32{7, 7, 7, 7, 7, 7}, m.Raw())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewEmpty[float64]().At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNewFromRowsRoundTrip reads back every (r,c) of a literal in row-major order.
func TestNewFromRowsRoundTrip(t *testing.T) {
	lit := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewFromRows(lit)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	CompareExact(t, lit, m)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())

	// The literal is copied, not retained.
	lit[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestNewFromRowsRagged ensures mismatched literal rows are rejected.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	require.Panics(t, func() { matrix.MustFromRows([][]int{{1}, {2, 3}}) })
}

// TestNewFromRowsEmpty covers the no-rows literal.
func TestNewFromRowsEmpty(t *testing.T) {
	m, err := matrix.NewFromRows[float64](nil)
	require.NoError(t, err)
	require.True(t, m.Empty())
}

// TestNewRowVector builds a 1×n matrix from a flat slice.
func TestNewRowVector(t *testing.T) {
	vec := []int{4, 5, 6}
	m := matrix.NewRowVector(vec)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())
	vec[1] = 0
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.True(t, matrix.Equal(m, m.Clone()))
}

// TestSwap verifies an O(1) exchange leaves both sides valid and independent.
func TestSwap(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float64{{9, 8, 7}})

	a.Swap(b)

	CompareExact(t, [][]float64{{9, 8, 7}}, a)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, b)

	MustSet(t, a, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, b, 0, 0))
}

// TestEqual covers reflexivity, symmetry, shape sensitivity and the empty rule.
func TestEqual(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	flat := matrix.MustFromRows([][]float64{{1, 2, 3, 4}})

	require.True(t, a.Equal(a))
	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(b, a))
	require.False(t, matrix.Equal(a, flat)) // same data, different shape

	MustSet(t, b, 1, 1, 5)
	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(b, a))

	e03, err := matrix.NewDense[float64](0, 3)
	require.NoError(t, err)
	e20, err := matrix.NewDense[float64](2, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(e03, e20))
	require.True(t, matrix.Equal(e20, matrix.NewEmpty[float64]()))
	require.True(t, matrix.Equal(nil, e03))
	require.False(t, matrix.Equal(a, e03))
}

// TestDoEarlyStop checks row-major visiting order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
