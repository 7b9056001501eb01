// SPDX-License-Identifier: MIT

// Package dense - column statistics & sanitizing transforms.
//
// Purpose:
//   - Treat a Matrix as r observations (rows) of c variables (columns).
//   - ColumnMeans, CenterColumns, Covariance, Correlation built on the
//     expression nodes; ReplaceNonFinite and Clip sanitize in place.
//
// Complexity quicksheet:
//   - ColumnMeans/CenterColumns: O(r·c); Covariance/Correlation: O(r·c²).
package dense

import (
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// ColumnMeans returns Σ_i m[i,j] / rows for every column, accumulated with
// compensated summation. A matrix with no rows yields zero means.
func (m *Matrix[T]) ColumnMeans() *Vector[T] {
	r, c := m.Dims()
	means := make([]T, c)
	if r == 0 {
		return VectorFrom(means)
	}
	acc := make([]scalar.Accumulator, c)
	var i, j int
	for i = 0; i < r; i++ {
		row := m.m.RowSlice(i)
		for j = range row {
			acc[j].Add(float64(row[j]))
		}
	}
	for j = range means {
		means[j] = T(acc[j].Value() / float64(r))
	}

	return VectorFrom(means)
}

// CenterColumns subtracts each column mean from its column in place and
// returns the means, so the centering can be undone with AddAssign of the
// same broadcast.
func (m *Matrix[T]) CenterColumns() *Vector[T] {
	means := m.ColumnMeans()
	r, _ := m.Dims()
	// ones(r)·meansᵀ broadcasts the means over every row; k == 1 so each
	// element is a single exact product.
	// The inner extent is 1 and the broadcast is r×c like m, so neither call
	// can fail.
	spread, _ := expr.Product(expr.ColumnOf(expr.Fill[T](r, 1)), expr.RowOf[T](means))
	_ = m.SubAssign(spread)

	return means
}

// Covariance returns the c×c sample covariance of the columns,
// (Xcᵀ·Xc)/(r−1) with Xc the column-centered copy of m, together with the
// column means. m is not modified. No columns yields a 0×0 result.
//
// Errors: linalg.ErrBadShape when m has columns but fewer than two rows.
func (m *Matrix[T]) Covariance() (*Matrix[T], *Vector[T], error) {
	r, c := m.Dims()
	if c == 0 {
		return &Matrix[T]{}, &Vector[T]{}, nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(ctxCovariance, errNeedRows(r))
	}
	xc := m.Clone()
	means := xc.CenterColumns()
	g, err := expr.Product(xc.T(), expr.Matrix[T](xc))
	if err != nil {
		return nil, nil, matrixErrorf(ctxCovariance, err)
	}

	return MatrixOf(expr.MatScale(g, 1/T(r-1))), means, nil
}

// Correlation returns the c×c Pearson correlation of the columns and the
// sample standard deviation of each column. A column with zero deviation
// has a zero row and column in the result, diagonal included; every other
// diagonal entry is exactly 1.
//
// Errors: as Covariance.
func (m *Matrix[T]) Correlation() (*Matrix[T], *Vector[T], error) {
	cov, _, err := m.Covariance()
	if err != nil {
		return nil, nil, matrixErrorf(ctxCorrelation, err)
	}
	c := cov.m.Rows
	stds := VectorOf(expr.Apply(expr.Diagonal[T](cov), scalar.Sqrt[T]))
	var i, j int
	for i = 0; i < c; i++ {
		row := cov.m.RowSlice(i)
		for j = range row {
			si, sj := stds.AtVec(i), stds.AtVec(j)
			switch {
			case si == 0 || sj == 0:
				row[j] = 0
			case i == j:
				row[j] = 1
			default:
				row[j] /= si * sj
			}
		}
	}

	return cov, stds, nil
}

// ReplaceNonFinite overwrites every NaN and ±Inf element with val.
// Errors: linalg.ErrNonFinite when val itself is not finite (m untouched).
func (m *Matrix[T]) ReplaceNonFinite(val T) error {
	if err := validateFinite(val); err != nil {
		return matrixErrorf(ctxReplace, err)
	}
	for k, v := range m.m.Data {
		if !scalar.IsFinite(v) {
			m.m.Data[k] = val
		}
	}

	return nil
}

// Clip clamps every element into [lo, hi]; the bounds are swapped when
// lo > hi. NaN elements are left as they are.
// Errors: linalg.ErrNonFinite for a NaN or infinite bound (m untouched).
func (m *Matrix[T]) Clip(lo, hi T) error {
	if err := validateFinite(lo, hi); err != nil {
		return matrixErrorf(ctxClip, err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	for k, v := range m.m.Data {
		switch {
		case v < lo:
			m.m.Data[k] = lo
		case v > hi:
			m.m.Data[k] = hi
		}
	}

	return nil
}
