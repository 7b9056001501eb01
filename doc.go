// Package linalg is a small dense linear-algebra toolkit for Go: vectors and
// matrices over any float type, lazy algebraic expressions that avoid
// intermediate allocations, and a dense linear-system solver.
//
// What's inside?
//
//   - scalar/: the Float constraint and its trait table (zero, one, epsilon,
//     ordering, abs, sqrt, sign) plus a compensated dot-product accumulator.
//   - expr/: expression nodes: broadcast, negate, reciprocal, apply,
//     add/sub/mul/div, transpose, matrix product, matrix-vector product,
//     diagonal and column embeddings. Nodes are evaluated element by element
//     on demand and materialized only when assigned into a container.
//   - dense/: Vector[T] and Matrix[T] containers owning one contiguous
//     buffer each, with alias-safe assignment, compound arithmetic, norms,
//     row/column views, inversion and predicates.
//   - solve/: LU decomposition with scaled partial pivoting, forward/back
//     substitution, iterative refinement, inversion, Cramer's rule for 2×2
//     and 3×3 systems, and the tridiagonal (Thomas) solver.
//   - interop/: bridges to gonum.org/v1/gonum/mat.
//   - plotmat/: heat maps and refinement residual plots via gonum.org/v1/plot.
//
// Quick example:
//
//	a, _ := dense.MatrixFrom([][]float64{{1, 2}, {3, 4}})
//	x, err := a.Solve(dense.VectorFrom([]float64{5, 6}))
//	// x == [-4, 4.5]
//
// Errors are package-level sentinels declared here and matched with
// errors.Is; every subpackage wraps them with the failing operation name.
package linalg
