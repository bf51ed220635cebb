// Package matrix implements lazy, allocation-deferred arithmetic over dense
// row-major matrices.
//
// The package provides:
//
//   - Dense[T], a bounds-checked row-major container with value semantics
//     (Clone copies, Swap moves in O(1)).
//   - Expression nodes (UnaryExpr, BinaryExpr) built by Neg, Add, Sub, Mul,
//     ScalarMul and Div. Building a node is O(1) and touches no elements.
//   - Materialize / MaterializeAs / Dense.Assign, which force a tree into a
//     single freshly allocated matrix.
//
// A tree is evaluated one element at a time: the element (i,j) of a node is
// computed from the elements (i,j) of its operands, recursively, down to the
// Dense leaves. Scalars broadcast to every position. Shapes are checked when
// the tree's Dims is queried, which Materialize does exactly once.
//
// Operands that are *Dense are captured by reference: the caller keeps
// ownership, and writes made before materialization are visible to it.
// See Operand, Val and Ref for explicit control.
//
// See the examples in this package for usage patterns.
package matrix
