// SPDX-License-Identifier: MIT

// Package solve - closed-form solvers for 2×2 and 3×3 systems (Cramer's rule).
//
// The solution is the closed-form ratio of determinants: the fast path for
// small, well-conditioned systems such as geometric intersection tests.
// Singularity is decided by the same scaled-pivot elimination Factorize
// runs, on a stack copy of a, so Cramer2/Cramer3 fail exactly when Solve
// fails. Prefer Solve when the conditioning is unknown.
package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Det2 returns the determinant of the row-major 2×2 matrix a.
// a must hold at least 4 elements.
func Det2[T scalar.Float](a []T) T {
	return a[0]*a[3] - a[1]*a[2]
}

// Det3 returns the determinant of the row-major 3×3 matrix a by cofactor
// expansion along the first row. a must hold at least 9 elements.
func Det3[T scalar.Float](a []T) T {
	return det3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

func det3[T scalar.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) T {
	return m00*(m11*m22-m12*m21) - m01*(m10*m22-m12*m20) + m02*(m10*m21-m11*m20)
}

// Cramer2 solves the 2×2 system a·X = b for every column of the row-major
// 2×cols matrix b, overwriting each column with its solution.
//
// Errors:
//   - linalg.ErrNonSquare when len(a) != 4.
//   - linalg.ErrBadShape / linalg.ErrExtentMismatch for a malformed b.
//   - linalg.ErrSingular when elimination with scaled partial pivoting meets
//     an exactly zero pivot (the Factorize rule); b is then left untouched.
//
// Complexity: O(cols).
func Cramer2[T scalar.Float](a, b []T, cols int) error {
	if err := validateSquare(2, len(a)); err != nil {
		return solveErrorf(opCramer2, err)
	}
	if err := validateCols(2, cols, len(b)); err != nil {
		return solveErrorf(opCramer2, err)
	}
	det, err := pivotDet(a, 2)
	if err != nil {
		return solveErrorf(opCramer2, err)
	}

	for c := 0; c < cols; c++ {
		b0, b1 := b[c], b[cols+c]
		b[c] = (b0*a[3] - a[1]*b1) / det
		b[cols+c] = (a[0]*b1 - b0*a[2]) / det
	}

	return nil
}

// Cramer3 is Cramer2 for a 3×3 coefficient matrix and a row-major 3×cols b.
// Each unknown is det(a with column i replaced by the rhs column) / det(a).
func Cramer3[T scalar.Float](a, b []T, cols int) error {
	if err := validateSquare(3, len(a)); err != nil {
		return solveErrorf(opCramer3, err)
	}
	if err := validateCols(3, cols, len(b)); err != nil {
		return solveErrorf(opCramer3, err)
	}
	det, err := pivotDet(a, 3)
	if err != nil {
		return solveErrorf(opCramer3, err)
	}

	for c := 0; c < cols; c++ {
		r0, r1, r2 := b[c], b[cols+c], b[2*cols+c]
		b[c] = det3(r0, a[1], a[2], r1, a[4], a[5], r2, a[7], a[8]) / det
		b[cols+c] = det3(a[0], r0, a[2], a[3], r1, a[5], a[6], r2, a[8]) / det
		b[2*cols+c] = det3(a[0], a[1], r0, a[3], a[4], r1, a[6], a[7], r2) / det
	}

	return nil
}

// pivotDet runs the Factorize elimination on a stack copy of the n×n matrix
// a (n ≤ 3). For a regular matrix it returns the closed-form determinant,
// or the pivot product when cancellation rounds the closed form to zero.
func pivotDet[T scalar.Float](a []T, n int) (T, error) {
	var (
		buf   [9]T
		scale [3]T
		swaps [3]int
	)
	lu := buf[:n*n]
	copy(lu, a)
	sign, err := eliminate(lu, n, scale[:n], swaps[:n])
	if err != nil {
		return 0, fmt.Errorf("det = 0: %w", err)
	}

	var det T
	if n == 2 {
		det = Det2(a)
	} else {
		det = Det3(a)
	}
	if det != 0 {
		return det, nil
	}
	det = T(sign)
	for k := 0; k < n; k++ {
		det *= lu[k*n+k]
	}

	return det, nil
}
