// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"github.com/katalvlaran/linalg"
)

const (
	opToGonum    = "ToGonum"
	opToGonumVec = "ToGonumVec"
	opCond       = "Cond"
	opSolveGonum = "SolveGonum"
)

// interopErrorf wraps err with an operation tag.
func interopErrorf(op string, err error) error {
	return fmt.Errorf("interop.%s: %w", op, err)
}

// validateNonEmpty rejects shapes gonum refuses to allocate.
func validateNonEmpty(r, c int) error {
	if r <= 0 || c <= 0 {
		return fmt.Errorf("shape %dx%d: %w", r, c, linalg.ErrBadShape)
	}

	return nil
}
