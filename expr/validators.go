// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opNewRowMajor = "NewRowMajor"
	opAdd         = "Add"
	opSub         = "Sub"
	opMulElem     = "MulElem"
	opDivElem     = "DivElem"
	opMatAdd      = "MatAdd"
	opMatSub      = "MatSub"
	opMatMulElem  = "MatMulElem"
	opProduct     = "Product"
	opMatVec      = "MatVec"
	opRow         = "Row"
	opCol         = "Col"
	opEvalInto    = "EvalInto"
	opEvalVecInto = "EvalVecInto"
)

// exprErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape rejects negative extents.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, linalg.ErrBadShape)
	}

	return nil
}

// SameLen checks that two vectors have the same length.
// Errors: linalg.ErrExtentMismatch.
// Complexity: O(1).
func SameLen[T scalar.Float](a, b Vector[T]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("len %d vs %d: %w", a.Len(), b.Len(), linalg.ErrExtentMismatch)
	}

	return nil
}

// SameDims checks that two matrices have identical rows and columns.
// Errors: linalg.ErrExtentMismatch (rows are compared first).
// Complexity: O(1).
func SameDims[T scalar.Float](a, b Matrix[T]) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return fmt.Errorf("rows %d vs %d: %w", ar, br, linalg.ErrExtentMismatch)
	}
	if ac != bc {
		return fmt.Errorf("columns %d vs %d: %w", ac, bc, linalg.ErrExtentMismatch)
	}

	return nil
}

// InnerDims checks a.Cols == b.Rows for the product a·b.
// Errors: linalg.ErrExtentMismatch.
func InnerDims[T scalar.Float](a, b Matrix[T]) error {
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return fmt.Errorf("inner dimension %d vs %d: %w", ac, br, linalg.ErrExtentMismatch)
	}

	return nil
}

// outOfRange builds the wrapped ErrOutOfRange for index idx against extent n.
func outOfRange(idx, n int) error {
	return fmt.Errorf("index %d not in [0,%d): %w", idx, n, linalg.ErrOutOfRange)
}
