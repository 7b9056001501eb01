// SPDX-License-Identifier: MIT

// Package solve - LU decomposition with scaled partial pivoting.
//
// Purpose:
//   - Factor a square row-major buffer in place into unit-lower L and upper U.
//   - Keep the pivot record (row swaps + determinant sign) inside the same value.
//   - Substitute one or many right-hand sides against the stored factors.
//
// Complexity quicksheet:
//   - Factorize: O(n³) time, O(n²) copy; SolveVec: O(n²); SolveCols: O(n²·cols).
package solve

import (
	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/scalar"
)

// LU is a completed decomposition P·A = L·U of an n×n matrix.
//   - lu holds L strictly below the diagonal (unit diagonal implied) and U on
//     and above it, row-major.
//   - swaps[k] is the row exchanged with row k at elimination step k.
//   - sign is +1 or -1: the parity of the exchanges.
//
// An LU is immutable once built and safe for concurrent substitution calls
// on distinct right-hand sides.
type LU[T scalar.Float] struct {
	n     int
	lu    []T
	swaps []int
	sign  int
}

// Factorize copies the n×n row-major matrix a and decomposes the copy.
// MAIN DESCRIPTION:
//   - Gaussian elimination with scaled partial pivoting; a is left untouched.
//
// Implementation:
//   - Stage 1: per-row scale = max |a[i][·]|; an all-zero row is singular.
//   - Stage 2: for each column k choose the row in k..n-1 maximizing
//     |a[row][k]| / scale[row] (first row wins ties), swap it into place
//     together with its scale, and flip the sign.
//   - Stage 3: an exactly zero chosen pivot is singular; otherwise store the
//     multipliers a[i][k]/a[k][k] below the pivot and update the trailing block.
//
// Inputs:
//   - a: row-major data, len(a) == n*n.
//   - n: order (n ≥ 0; n == 0 yields an empty decomposition with Det 1).
//
// Returns:
//   - *LU[T] owning its own copy of the factors.
//
// Errors:
//   - linalg.ErrBadShape when n < 0.
//   - linalg.ErrNonSquare when len(a) != n*n.
//   - linalg.ErrSingular on a zero row or an exactly zero pivot. There is no
//     epsilon substitution: a tiny nonzero pivot is accepted as is.
//
// Determinism:
//   - Fixed loop order and tie-break; identical inputs give identical factors.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the copy plus O(n) for scales and swaps.
//
// AI-Hints:
//   - Factor once, then call SolveVec/SolveCols for every right-hand side.
func Factorize[T scalar.Float](a []T, n int) (*LU[T], error) {
	if err := validateSquare(n, len(a)); err != nil {
		return nil, solveErrorf(opFactorize, err)
	}
	buf := make([]T, len(a))
	copy(buf, a)

	return FactorizeInPlace(buf, n)
}

// FactorizeInPlace is Factorize without the copy: the returned LU takes
// ownership of a, which must not be used by the caller afterwards. On error
// the contents of a are unspecified.
func FactorizeInPlace[T scalar.Float](a []T, n int) (*LU[T], error) {
	if err := validateSquare(n, len(a)); err != nil {
		return nil, solveErrorf(opFactorize, err)
	}

	f := &LU[T]{n: n, lu: a, swaps: make([]int, n), sign: 1}
	if err := f.decompose(); err != nil {
		return nil, solveErrorf(opFactorize, err)
	}

	return f, nil
}

// decompose runs the elimination over f.lu.
func (f *LU[T]) decompose() error {
	sign, err := eliminate(f.lu, f.n, make([]T, f.n), f.swaps)
	f.sign = sign

	return err
}

// eliminate factors the n×n buffer a in place with scaled partial pivoting,
// records the exchanged rows in swaps and returns their parity. scale is
// workspace of length n. Every singularity decision in this package goes
// through here, so the small closed-form solvers fail on exactly the
// matrices Factorize rejects.
func eliminate[T scalar.Float](a []T, n int, scale []T, swaps []int) (int, error) {
	sign := 1

	// Stage 1: row scales.
	var i, j, k int
	for i = 0; i < n; i++ {
		var big T
		for _, v := range a[i*n : (i+1)*n] {
			big = max(big, scalar.Abs(v))
		}
		if big == 0 {
			return sign, linalg.ErrSingular
		}
		scale[i] = big
	}

	for k = 0; k < n; k++ {
		// Stage 2: scaled pivot search, strict > keeps the first maximum.
		p := k
		best := scalar.Abs(a[k*n+k]) / scale[k]
		for i = k + 1; i < n; i++ {
			if v := scalar.Abs(a[i*n+k]) / scale[i]; v > best {
				best, p = v, i
			}
		}
		if a[p*n+k] == 0 {
			return sign, linalg.ErrSingular
		}
		if p != k {
			swapRows(a, n, p, k)
			scale[p], scale[k] = scale[k], scale[p]
			sign = -sign
		}
		swaps[k] = p

		// Stage 3: eliminate below the pivot, keeping multipliers as L.
		pivot := a[k*n+k]
		rowK := a[k*n : (k+1)*n]
		for i = k + 1; i < n; i++ {
			rowI := a[i*n : (i+1)*n]
			m := rowI[k] / pivot
			rowI[k] = m
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				rowI[j] -= m * rowK[j]
			}
		}
	}

	return sign, nil
}

// swapRows exchanges rows p and q of an n-column row-major buffer.
func swapRows[T scalar.Float](a []T, n, p, q int) {
	rp := a[p*n : (p+1)*n]
	rq := a[q*n : (q+1)*n]
	for j := range rp {
		rp[j], rq[j] = rq[j], rp[j]
	}
}

// N returns the order of the factored matrix.
func (f *LU[T]) N() int { return f.n }

// Sign returns the determinant sign flag (+1 or -1) of the row exchanges.
func (f *LU[T]) Sign() int { return f.sign }

// Swaps returns a copy of the row-exchange record: at step k, row k was
// exchanged with row Swaps()[k] (equal to k when no exchange happened).
func (f *LU[T]) Swaps() []int {
	out := make([]int, len(f.swaps))
	copy(out, f.swaps)

	return out
}

// Det returns det(A) = sign · Π U[k][k].
func (f *LU[T]) Det() T {
	d := T(f.sign)
	for k := 0; k < f.n; k++ {
		d *= f.lu[k*f.n+k]
	}

	return d
}

// SolveVec overwrites b with the solution of A·x = b.
// Errors: linalg.ErrExtentMismatch when len(b) != N() (b untouched).
// Complexity: O(n²), no allocation.
func (f *LU[T]) SolveVec(b []T) error {
	if err := validateLen("rhs", len(b), f.n); err != nil {
		return solveErrorf(opSolveVec, err)
	}
	f.substitute(b, 0, 1)

	return nil
}

// SolveCols overwrites the row-major n×cols matrix b with the solution of
// A·X = B; every column is solved independently in place.
// Errors: linalg.ErrBadShape for cols < 0, linalg.ErrExtentMismatch when
// len(b) != N()*cols.
func (f *LU[T]) SolveCols(b []T, cols int) error {
	if err := validateCols(f.n, cols, len(b)); err != nil {
		return solveErrorf(opSolveCols, err)
	}
	for c := 0; c < cols; c++ {
		f.substitute(b, c, cols)
	}

	return nil
}

// substitute solves in place on the strided column b[off], b[off+stride], ...
// Steps: apply the recorded swaps, forward-substitute with unit L, then
// back-substitute with U.
func (f *LU[T]) substitute(b []T, off, stride int) {
	n, a := f.n, f.lu
	var i, j int
	for k, p := range f.swaps {
		if p != k {
			b[off+k*stride], b[off+p*stride] = b[off+p*stride], b[off+k*stride]
		}
	}
	for i = 1; i < n; i++ {
		s := b[off+i*stride]
		for j = 0; j < i; j++ {
			s -= a[i*n+j] * b[off+j*stride]
		}
		b[off+i*stride] = s
	}
	for i = n - 1; i >= 0; i-- {
		s := b[off+i*stride]
		for j = i + 1; j < n; j++ {
			s -= a[i*n+j] * b[off+j*stride]
		}
		b[off+i*stride] = s / a[i*n+i]
	}
}
