// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/dense"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// Cond returns the 2-norm condition number σmax/σmin of m. A singular matrix
// gives +Inf.
// Errors: linalg.ErrBadShape when m has a zero extent.
// Complexity: one SVD, O(min(r,c)²·max(r,c)).
func Cond[T scalar.Float](m expr.Matrix[T]) (float64, error) {
	r, c := m.Dims()
	if err := validateNonEmpty(r, c); err != nil {
		return 0, interopErrorf(opCond, err)
	}
	d, _ := ToGonum(m)

	return mat.Cond(d, 2), nil
}

// SolveGonum solves the square system a·x = b with gonum's LU.
// gonum reports a poorly conditioned but nonsingular system with a
// mat.Condition error; the solution is still returned in that case, together
// with a nil error.
//
// Errors:
//   - linalg.ErrBadShape for an empty a.
//   - linalg.ErrNonSquare when a is not square.
//   - linalg.ErrExtentMismatch when b.Len() != rows(a).
//   - linalg.ErrSingular when gonum finds a exactly singular.
func SolveGonum[T scalar.Float](a expr.Matrix[T], b expr.Vector[T]) (*dense.Vector[T], error) {
	r, c := a.Dims()
	if err := validateNonEmpty(r, c); err != nil {
		return nil, interopErrorf(opSolveGonum, err)
	}
	if r != c {
		return nil, interopErrorf(opSolveGonum,
			fmt.Errorf("shape %dx%d: %w", r, c, linalg.ErrNonSquare))
	}
	if b.Len() != r {
		return nil, interopErrorf(opSolveGonum,
			fmt.Errorf("rhs len %d, want %d: %w", b.Len(), r, linalg.ErrExtentMismatch))
	}
	ga, _ := ToGonum(a)
	gb, _ := ToGonumVec(b)

	var x mat.VecDense
	if err := x.SolveVec(ga, gb); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, interopErrorf(opSolveGonum, err)
		}
		if math.IsInf(float64(cond), 1) {
			return nil, interopErrorf(opSolveGonum, linalg.ErrSingular)
		}
	}

	return FromGonumVec[T](&x), nil
}
