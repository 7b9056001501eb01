// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/scalar"
)

// Tridiagonal solves A·x = rhs in place, where A is n×n with sub-diagonal
// sub (len n-1), main diagonal diag (len n) and super-diagonal super (len n-1).
//
// Implementation (Thomas algorithm, no pivoting):
//   - Stage 1: forward reduction of the coefficients into scratch,
//     c'[i] = super[i] / β[i] with β[0] = diag[0] and
//     β[i] = diag[i] - sub[i-1]·c'[i-1]. Every β is checked before rhs is
//     written.
//   - Stage 2: forward reduction of rhs with the same β.
//   - Stage 3: back substitution x[i] = d'[i] - c'[i]·x[i+1].
//
// Stable for diagonally dominant or symmetric positive definite systems; not
// unconditionally stable otherwise. Use Solve on the full matrix when in doubt.
//
// Errors:
//   - linalg.ErrExtentMismatch for inconsistent lengths or len(scratch) < n.
//   - linalg.ErrSingular when a computed pivot β[i] is exactly zero; rhs is
//     left untouched.
//
// Complexity: O(n) time, no allocation.
func Tridiagonal[T scalar.Float](sub, diag, super, rhs, scratch []T) error {
	n := len(diag)
	if err := validateTridiagonal(n, sub, super, rhs, scratch); err != nil {
		return solveErrorf(opTridiagonal, err)
	}
	if n == 0 {
		return nil
	}

	// Stage 1.
	cp := scratch[:n]
	beta := diag[0]
	var i int
	for i = 0; ; i++ {
		if beta == 0 {
			return solveErrorf(opTridiagonal, fmt.Errorf("pivot %d is zero: %w", i, linalg.ErrSingular))
		}
		if i == n-1 {
			break
		}
		cp[i] = super[i] / beta
		beta = diag[i+1] - sub[i]*cp[i]
	}

	// Stage 2.
	rhs[0] /= diag[0]
	for i = 1; i < n; i++ {
		beta = diag[i] - sub[i-1]*cp[i-1]
		rhs[i] = (rhs[i] - sub[i-1]*rhs[i-1]) / beta
	}

	// Stage 3.
	for i = n - 2; i >= 0; i-- {
		rhs[i] -= cp[i] * rhs[i+1]
	}

	return nil
}

// SolveTridiagonal is the allocating form of Tridiagonal: inputs are left
// untouched and the solution is returned in a new slice.
func SolveTridiagonal[T scalar.Float](sub, diag, super, rhs []T) ([]T, error) {
	n := len(diag)
	scratch := make([]T, n)
	if err := validateTridiagonal(n, sub, super, rhs, scratch); err != nil {
		return nil, solveErrorf(opSolveTridiag, err)
	}
	x := make([]T, n)
	copy(x, rhs)
	if err := Tridiagonal(sub, diag, super, x, scratch); err != nil {
		return nil, solveErrorf(opSolveTridiag, err)
	}

	return x, nil
}

func validateTridiagonal[T scalar.Float](n int, sub, super, rhs, scratch []T) error {
	off := max(n-1, 0)
	if err := validateLen("sub", len(sub), off); err != nil {
		return err
	}
	if err := validateLen("super", len(super), off); err != nil {
		return err
	}
	if err := validateLen("rhs", len(rhs), n); err != nil {
		return err
	}
	if len(scratch) < n {
		return fmt.Errorf("scratch len %d < %d: %w", len(scratch), n, linalg.ErrExtentMismatch)
	}

	return nil
}
