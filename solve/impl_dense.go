// SPDX-License-Identifier: MIT

// Package solve - allocation-owning entry points for general square systems.
// Each one validates, factors a private copy of A once, substitutes every
// right-hand-side column and refines it according to the options.
package solve

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Solve returns x with A·x = b for the n×n row-major matrix a.
// MAIN DESCRIPTION:
//   - Factor once (scaled partial pivoting), substitute, then refine
//     DefaultRefineSteps times unless configured otherwise.
//
// Inputs:
//   - a: row-major n×n coefficients (read-only), b: right-hand side (read-only).
//   - opts: WithRefinement, WithoutRefinement, WithTrace.
//
// Returns:
//   - a freshly allocated x of length n.
//
// Errors:
//   - linalg.ErrBadShape (n < 0), linalg.ErrNonSquare (len(a) != n*n),
//     linalg.ErrExtentMismatch (len(b) != n), linalg.ErrSingular.
//
// Determinism:
//   - Identical inputs and options give bit-identical x.
//
// Complexity:
//   - Time O(n³) factor + O(n²) per refinement step, Space O(n²).
//
// Notes:
//   - For the identity matrix x == b exactly: every multiplier is 0 and
//     every pivot is 1.
func Solve[T scalar.Float](a []T, n int, b []T, opts ...Option) ([]T, error) {
	o := gatherOptions(opts...)
	if err := validateSquare(n, len(a)); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	if err := validateLen("rhs", len(b), n); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	f, err := Factorize(a, n)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	x := make([]T, n)
	copy(x, b)
	f.substitute(x, 0, 1)
	if o.refineSteps > 0 || o.trace != nil {
		f.refine(a, b, x, o.refineSteps, make([]T, 2*n), o.trace, 0)
	}

	return x, nil
}

// SolveMatrix returns X with A·X = B, where b is row-major n×cols.
// Columns are solved and refined independently against one factorization.
// Errors: as Solve, plus linalg.ErrBadShape for cols < 0.
func SolveMatrix[T scalar.Float](a []T, n int, b []T, cols int, opts ...Option) ([]T, error) {
	if err := validateSquare(n, len(a)); err != nil {
		return nil, solveErrorf(opSolveMatrix, err)
	}
	if err := validateCols(n, cols, len(b)); err != nil {
		return nil, solveErrorf(opSolveMatrix, err)
	}
	f, err := Factorize(a, n)
	if err != nil {
		return nil, solveErrorf(opSolveMatrix, err)
	}

	return f.solveColumns(a, b, cols, gatherOptions(opts...)), nil
}

// Inverse returns A⁻¹ as a new row-major n×n buffer: one factorization,
// then one (refined) solve per identity column e_j, placed as column j.
// Errors: linalg.ErrBadShape, linalg.ErrNonSquare, linalg.ErrSingular.
// Complexity: O(n³).
func Inverse[T scalar.Float](a []T, n int, opts ...Option) ([]T, error) {
	if err := validateSquare(n, len(a)); err != nil {
		return nil, solveErrorf(opInverse, err)
	}
	f, err := Factorize(a, n)
	if err != nil {
		return nil, solveErrorf(opInverse, err)
	}
	id := make([]T, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}

	return f.solveColumns(a, id, n, gatherOptions(opts...)), nil
}

// InvertInPlace replaces the n×n matrix a with its inverse. On error a is
// left exactly as it was.
func InvertInPlace[T scalar.Float](a []T, n int, opts ...Option) error {
	inv, err := Inverse(a, n, opts...)
	if err != nil {
		return solveErrorf(opInvertInPlace, err)
	}
	copy(a, inv)

	return nil
}

// solveColumns substitutes and refines every column of the n×cols matrix b
// (read-only) and returns the solution matrix.
func (f *LU[T]) solveColumns(a, b []T, cols int, o Options) []T {
	n := f.n
	x := make([]T, len(b))
	copy(x, b)
	for c := 0; c < cols; c++ {
		f.substitute(x, c, cols)
	}
	if o.refineSteps == 0 && o.trace == nil {
		return x
	}

	// Refinement runs on contiguous copies of each column.
	colX := make([]T, n)
	colB := make([]T, n)
	work := make([]T, 2*n)
	var i int
	for c := 0; c < cols; c++ {
		for i = 0; i < n; i++ {
			colX[i] = x[i*cols+c]
			colB[i] = b[i*cols+c]
		}
		f.refine(a, colB, colX, o.refineSteps, work, o.trace, c)
		for i = 0; i < n; i++ {
			x[i*cols+c] = colX[i]
		}
	}

	return x
}
