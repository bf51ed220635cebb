// Package matexpr is a small library of lazy matrix expressions.
//
// Arithmetic on matrices (negation, addition, subtraction, scaling by a
// scalar on either side, division by a scalar) builds a lightweight tree
// instead of computing anything. The tree is evaluated once, element by
// element, when it is materialized into a concrete matrix, so a chain of
// operations costs a single output allocation and no temporaries.
//
// Layout:
//
//	matrix/       — Dense container, expression nodes, operators, materialization
//	cmd/matexpr/  — demo CLI printing a sample expression (tsv or table)
//
// Quick start:
//
//	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.MustFromRows([][]float64{{0, 1}, {1, 2}})
//	out, err := a.Neg().Mul(2).Add(b).Div(2).Materialize()
package matexpr
