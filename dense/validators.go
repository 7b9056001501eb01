// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxNewVector      = "NewVector"
	ctxNewMatrix      = "NewMatrix"
	ctxMatrixFrom     = "MatrixFrom"
	ctxMatrixFromData = "MatrixFromData"
	ctxIdentity       = "Identity"
	ctxAtChecked      = "AtChecked"
	ctxSetChecked     = "SetChecked"
	ctxAssign         = "Assign"
	ctxAddAssign      = "AddAssign"
	ctxSubAssign      = "SubAssign"
	ctxMulElemAssign  = "MulElemAssign"
	ctxDivAssign      = "DivAssign"
	ctxMulAssign      = "MulAssign"
	ctxResize         = "Resize"
	ctxMin            = "Min"
	ctxMax            = "Max"
	ctxDot            = "Dot"
	ctxNormal         = "Normal"
	ctxProject        = "Project"
	ctxReject         = "Reject"
	ctxRow            = "Row"
	ctxColumn         = "Column"
	ctxInvert         = "Invert"
	ctxSetIdentity    = "SetIdentity"
	ctxDet            = "Det"
	ctxTrace          = "Trace"
	ctxSolve          = "Solve"
	ctxSolveMatrix    = "SolveMatrix"
	ctxAllClose       = "AllClose"
	ctxCovariance     = "Covariance"
	ctxCorrelation    = "Correlation"
	ctxReplace        = "ReplaceNonFinite"
	ctxClip           = "Clip"
)

// vectorErrorf wraps err with a Vector method tag.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// matrixErrorf wraps err with a Matrix method tag.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// vecIndexErrorf reports an out-of-range index for the Vector accessors.
func vecIndexErrorf(method string, i int) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, linalg.ErrOutOfRange)
}

// indexErrorf reports an out-of-range (row, col) for the checked accessors.
func indexErrorf(kind, method string, row, col int) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, linalg.ErrOutOfRange)
}

// validateExtent rejects negative sizes.
func validateExtent(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, linalg.ErrBadShape)
	}

	return nil
}

// errNonSquare builds the wrapped ErrNonSquare for an r×c matrix.
func errNonSquare(r, c int) error {
	return fmt.Errorf("shape %dx%d: %w", r, c, linalg.ErrNonSquare)
}

// normalizeTolerances abs-es rtol and atol and rejects NaN/Inf.
func normalizeTolerances[T scalar.Float](rtol, atol T) (T, T, error) {
	if !scalar.IsFinite(rtol) || !scalar.IsFinite(atol) {
		return 0, 0, fmt.Errorf("rtol=%v atol=%v: %w", rtol, atol, linalg.ErrInvalidTolerance)
	}

	return scalar.Abs(rtol), scalar.Abs(atol), nil
}

// errNeedRows reports too few observations for a sample statistic.
func errNeedRows(r int) error {
	return fmt.Errorf("%d rows, need at least 2: %w", r, linalg.ErrBadShape)
}

// validateFinite rejects NaN and ±Inf parameters.
func validateFinite[T scalar.Float](vals ...T) error {
	for _, v := range vals {
		if !scalar.IsFinite(v) {
			return fmt.Errorf("value %v: %w", v, linalg.ErrNonFinite)
		}
	}

	return nil
}

// isClose reports |a-b| ≤ atol + rtol·|b|.
func isClose[T scalar.Float](a, b, rtol, atol T) bool {
	if a == b {
		return true // also covers equal infinities
	}
	diff := float64(a) - float64(b)

	return math.Abs(diff) <= float64(atol)+float64(rtol)*math.Abs(float64(b))
}
