// SPDX-License-Identifier: MIT

package solve

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Refine runs one iterative-refinement pass on the candidate solution x of
// A·x = b, using the stored factors of A.
//
// Implementation:
//   - Stage 1: r = A·x − b, each entry accumulated with compensated FMA
//     products (scalar.Accumulator) and rounded once.
//   - Stage 2: solve A·dx = r with the existing factors.
//   - Stage 3: x' = x − dx; x is replaced by x' only when ‖A·x' − b‖₂ does
//     not exceed ‖A·x − b‖₂. A pass can therefore never worsen x.
//
// Inputs:
//   - a: the ORIGINAL n×n matrix (not the factors), b: the original
//     right-hand side, x: the candidate, updated in place.
//
// Returns:
//   - the residual norm ‖A·x − b‖₂ of x after the pass.
//
// Errors:
//   - linalg.ErrNonSquare when len(a) != n*n, linalg.ErrExtentMismatch when
//     len(b) or len(x) != n. x is untouched on error.
//
// Complexity:
//   - Time O(n²) for two residuals and one substitution, Space O(n).
func (f *LU[T]) Refine(a, b, x []T) (T, error) {
	if err := validateSquare(f.n, len(a)); err != nil {
		return 0, solveErrorf(opRefine, err)
	}
	if err := validateLen("rhs", len(b), f.n); err != nil {
		return 0, solveErrorf(opRefine, err)
	}
	if err := validateLen("x", len(x), f.n); err != nil {
		return 0, solveErrorf(opRefine, err)
	}

	return f.refine(a, b, x, 1, make([]T, 2*f.n), nil, 0), nil
}

// refine performs up to steps refinement passes on x and returns the final
// residual norm. work must hold at least 2n elements. trace, when set,
// receives the starting residual as step 0 and every accepted step.
// Refinement stops early on a zero residual or a rejected correction.
func (f *LU[T]) refine(a, b, x []T, steps int, work []T, trace TraceFunc, col int) T {
	n := f.n
	r, cand := work[:n], work[n:2*n]

	norm := f.residual(a, b, x, r)
	if trace != nil {
		trace(col, 0, float64(norm))
	}
	var i int
	for s := 1; s <= steps && norm > 0; s++ {
		f.substitute(r, 0, 1) // r now holds dx
		for i = 0; i < n; i++ {
			cand[i] = x[i] - r[i]
		}
		next := f.residual(a, b, cand, r)
		// NaN compares false and stops refinement as well.
		if !(next <= norm) {
			break
		}
		copy(x, cand)
		norm = next
		if trace != nil {
			trace(col, s, float64(norm))
		}
	}

	return norm
}

// residual stores A·x − b into r and returns ‖r‖₂.
func (f *LU[T]) residual(a, b, x, r []T) T {
	n := f.n
	var acc scalar.Accumulator
	var i, j int
	for i = 0; i < n; i++ {
		acc.Reset()
		row := a[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			acc.AddProduct(float64(row[j]), float64(x[j]))
		}
		acc.Add(-float64(b[i]))
		r[i] = T(acc.Value())
	}

	return scalar.Norm2(r)
}
