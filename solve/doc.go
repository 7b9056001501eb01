// Package solve provides dense linear-system solvers over flat row-major
// buffers: LU decomposition with scaled partial pivoting, forward and back
// substitution, iterative refinement, inversion, Cramer's rule for 2×2 and
// 3×3 systems, and the tridiagonal (Thomas) algorithm.
//
// The solvers take raw []T buffers, not expression nodes. Containers in
// package dense expose their storage through RawData and call in here.
//
// Decomposition and pivot record live together in one LU value, so a
// permutation can never be applied to a buffer it was not computed for.
//
// Quick start:
//
//	a := []float64{1, 2, 3, 4} // 2×2, row-major
//	x, err := solve.Solve(a, 2, []float64{5, 6})
//	// x ≈ [-4, 4.5]
//
// Failure modes (match with errors.Is):
//   - linalg.ErrNonSquare      len(a) != n*n, or a non-square coefficient block
//   - linalg.ErrExtentMismatch right-hand side of the wrong length
//   - linalg.ErrSingular       an exactly zero pivot or determinant
//
// On failure, no caller-owned output buffer is modified. The one exception is
// FactorizeInPlace, which owns its input: after an error its contents are
// unspecified.
package solve
