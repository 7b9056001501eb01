// SPDX-License-Identifier: MIT

// Package dense - linear-algebra methods delegating to package solve.
//
// Every method works on the raw row-major buffer; solve never mutates it on
// failure, so a failing Invert leaves m exactly as it was.
package dense

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/solve"
)

// Invert replaces m with its inverse: one LU decomposition, then one
// refined solve per identity column.
// MAIN DESCRIPTION:
//   - In-place inversion with scaled partial pivoting.
//
// Inputs:
//   - opts: solve options (refinement steps, trace).
//
// Errors:
//   - linalg.ErrNonSquare for a non-square matrix.
//   - linalg.ErrSingular when a pivot is exactly zero. m is unchanged.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[T]) Invert(opts ...solve.Option) error {
	r, c := m.Dims()
	if r != c {
		return matrixErrorf(ctxInvert, errNonSquare(r, c))
	}
	if err := solve.InvertInPlace(m.m.Data, r, opts...); err != nil {
		return matrixErrorf(ctxInvert, err)
	}

	return nil
}

// SetIdentity overwrites m with the identity.
// Errors: linalg.ErrNonSquare.
func (m *Matrix[T]) SetIdentity() error {
	r, c := m.Dims()
	if r != c {
		return matrixErrorf(ctxSetIdentity, errNonSquare(r, c))
	}
	clear(m.m.Data)
	for i := 0; i < r; i++ {
		m.m.Data[i*r+i] = 1
	}

	return nil
}

// Det returns det(m) from an LU decomposition; a singular matrix yields 0.
// Errors: linalg.ErrNonSquare.
func (m *Matrix[T]) Det() (T, error) {
	r, c := m.Dims()
	if r != c {
		return 0, matrixErrorf(ctxDet, errNonSquare(r, c))
	}
	f, err := solve.Factorize(m.m.Data, r)
	if errors.Is(err, linalg.ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(ctxDet, err)
	}

	return f.Det(), nil
}

// Trace returns Σ m[i,i].
// Errors: linalg.ErrNonSquare.
func (m *Matrix[T]) Trace() (T, error) {
	r, c := m.Dims()
	if r != c {
		return 0, matrixErrorf(ctxTrace, errNonSquare(r, c))
	}
	var acc scalar.Accumulator
	for i := 0; i < r; i++ {
		acc.Add(float64(m.At(i, i)))
	}

	return T(acc.Value()), nil
}

// Solve returns x with m·x = b.
// Errors: linalg.ErrNonSquare, linalg.ErrExtentMismatch, linalg.ErrSingular.
func (m *Matrix[T]) Solve(b expr.Vector[T], opts ...solve.Option) (*Vector[T], error) {
	r, c := m.Dims()
	if r != c {
		return nil, matrixErrorf(ctxSolve, errNonSquare(r, c))
	}
	if b.Len() != r {
		return nil, matrixErrorf(ctxSolve,
			fmt.Errorf("rhs len %d, want %d: %w", b.Len(), r, linalg.ErrExtentMismatch))
	}
	x, err := solve.Solve(m.m.Data, r, expr.MaterializeVec(b), opts...)
	if err != nil {
		return nil, matrixErrorf(ctxSolve, err)
	}

	return &Vector[T]{data: x}, nil
}

// SolveMatrix returns X with m·X = B, solving every column of B against one
// decomposition.
// Errors: linalg.ErrNonSquare, linalg.ErrExtentMismatch, linalg.ErrSingular.
func (m *Matrix[T]) SolveMatrix(b expr.Matrix[T], opts ...solve.Option) (*Matrix[T], error) {
	r, c := m.Dims()
	if r != c {
		return nil, matrixErrorf(ctxSolveMatrix, errNonSquare(r, c))
	}
	br, bc := b.Dims()
	if br != r {
		return nil, matrixErrorf(ctxSolveMatrix,
			fmt.Errorf("rhs rows %d, want %d: %w", br, r, linalg.ErrExtentMismatch))
	}
	x, err := solve.SolveMatrix(m.m.Data, r, expr.Materialize(b).Data, bc, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxSolveMatrix, err)
	}

	return &Matrix[T]{m: expr.RowMajor[T]{Rows: br, Cols: bc, Data: x}}, nil
}
