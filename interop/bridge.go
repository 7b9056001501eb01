// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/dense"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// view adapts an expression to mat.Matrix.
type view[T scalar.Float] struct{ m expr.Matrix[T] }

var _ mat.Matrix = view[float64]{}

func (v view[T]) Dims() (r, c int)    { return v.m.Dims() }
func (v view[T]) At(i, j int) float64 { return float64(v.m.At(i, j)) }
func (v view[T]) T() mat.Matrix       { return mat.Transpose{Matrix: v} }

// View returns m as a mat.Matrix without copying. Every gonum access calls
// m.At, so wrap a materialized matrix when gonum will read elements many
// times (factorizations do).
func View[T scalar.Float](m expr.Matrix[T]) mat.Matrix { return view[T]{m: m} }

// ToGonum copies m into a new *mat.Dense.
// Errors: linalg.ErrBadShape when m has a zero extent.
func ToGonum[T scalar.Float](m expr.Matrix[T]) (*mat.Dense, error) {
	r, c := m.Dims()
	if err := validateNonEmpty(r, c); err != nil {
		return nil, interopErrorf(opToGonum, err)
	}
	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j] = float64(m.At(i, j))
		}
	}

	return mat.NewDense(r, c, data), nil
}

// ToGonumVec copies v into a new *mat.VecDense.
// Errors: linalg.ErrBadShape when v is empty.
func ToGonumVec[T scalar.Float](v expr.Vector[T]) (*mat.VecDense, error) {
	n := v.Len()
	if err := validateNonEmpty(n, 1); err != nil {
		return nil, interopErrorf(opToGonumVec, err)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(v.AtVec(i))
	}

	return mat.NewVecDense(n, data), nil
}

// FromGonum copies any gonum matrix into a new dense.Matrix, converting each
// element to T.
func FromGonum[T scalar.Float](m mat.Matrix) *dense.Matrix[T] {
	r, c := m.Dims()
	data := make([]T, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j] = T(m.At(i, j))
		}
	}
	// The shape is non-negative and matches len(data) by construction.
	out, _ := dense.MatrixFromData(r, c, data)

	return out
}

// FromGonumVec copies a gonum vector into a new dense.Vector.
func FromGonumVec[T scalar.Float](v mat.Vector) *dense.Vector[T] {
	data := make([]T, v.Len())
	for i := range data {
		data[i] = T(v.AtVec(i))
	}

	return dense.VectorFrom(data)
}
