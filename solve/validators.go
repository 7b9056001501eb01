// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/katalvlaran/linalg"
)

// Operation name constants for unified error wrapping.
const (
	opFactorize     = "Factorize"
	opSolveVec      = "LU.SolveVec"
	opSolveCols     = "LU.SolveCols"
	opRefine        = "LU.Refine"
	opSolve         = "Solve"
	opSolveMatrix   = "SolveMatrix"
	opInverse       = "Inverse"
	opCramer2       = "Cramer2"
	opCramer3       = "Cramer3"
	opTridiagonal   = "Tridiagonal"
	opSolveTridiag  = "SolveTridiagonal"
	opInvertInPlace = "InvertInPlace"
)

// solveErrorf wraps err with an operation tag, preserving the sentinel via %w.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSquare checks that a holds exactly n×n elements.
func validateSquare(n, length int) error {
	if n < 0 {
		return fmt.Errorf("order %d: %w", n, linalg.ErrBadShape)
	}
	if length != n*n {
		return fmt.Errorf("len %d is not %d×%d: %w", length, n, n, linalg.ErrNonSquare)
	}

	return nil
}

// validateLen checks a right-hand-side length.
func validateLen(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s len %d, want %d: %w", what, got, want, linalg.ErrExtentMismatch)
	}

	return nil
}

// validateCols checks a row-major n×cols right-hand side.
func validateCols(n, cols, length int) error {
	if cols < 0 {
		return fmt.Errorf("cols %d: %w", cols, linalg.ErrBadShape)
	}

	return validateLen("rhs", length, n*cols)
}
