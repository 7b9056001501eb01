// SPDX-License-Identifier: MIT

package dense

import (
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// AllClose reports whether a and b have the same shape and
// |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| everywhere.
// Implementation:
//   - Stage 1: normalize tolerances (negative values are abs-ed).
//   - Stage 2: check shapes, then compare with early exit on the first
//     violation. Flat slices are walked directly when both are *Matrix.
//
// Errors:
//   - linalg.ErrInvalidTolerance for NaN or infinite tolerances.
//   - linalg.ErrExtentMismatch for different shapes.
//
// Determinism:
//   - Fixed row-major traversal.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - NaN never compares close, not even to NaN.
func AllClose[T scalar.Float](a, b expr.Matrix[T], rtol, atol T) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}
	if err = expr.SameDims(a, b); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}

	// Fast path over flat buffers.
	if da, ok := a.(*Matrix[T]); ok {
		if db, ok := b.(*Matrix[T]); ok {
			for k, x := range da.m.Data {
				if !isClose(x, db.m.Data[k], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !isClose(a.At(i, j), b.At(i, j), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllCloseVec is AllClose for vectors.
func AllCloseVec[T scalar.Float](a, b expr.Vector[T], rtol, atol T) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, vectorErrorf(ctxAllClose, err)
	}
	if err = expr.SameLen(a, b); err != nil {
		return false, vectorErrorf(ctxAllClose, err)
	}
	for i, n := 0, a.Len(); i < n; i++ {
		if !isClose(a.AtVec(i), b.AtVec(i), rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
