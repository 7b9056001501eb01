// SPDX-License-Identifier: MIT

package expr

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Materialize evaluates every element of m once into a fresh RowMajor.
// Use it to break a chain of nested Product nodes.
// Complexity: O(r·c) accesses of m.
func Materialize[T scalar.Float](m Matrix[T]) RowMajor[T] {
	r, c := m.Dims()
	out := RowMajor[T]{Rows: r, Cols: c, Data: make([]T, r*c)}
	fillRows(out, m)

	return out
}

// MaterializeVec evaluates every element of v once into a fresh Slice.
func MaterializeVec[T scalar.Float](v Vector[T]) Slice[T] {
	out := make(Slice[T], v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// EvalInto writes every element of src into dst.
// dst must not be read by src: evaluation is direct, element by element. The
// containers in package dense add scratch buffering on top of this.
// Errors: linalg.ErrExtentMismatch when the shapes differ (dst untouched).
func EvalInto[T scalar.Float](dst MutableMatrix[T], src Matrix[T]) error {
	if err := SameDims[T](dst, src); err != nil {
		return exprErrorf(opEvalInto, err)
	}
	if rm, ok := dst.(RowMajor[T]); ok {
		fillRows(rm, src)

		return nil
	}
	r, c := src.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}

	return nil
}

// EvalVecInto writes every element of src into dst.
// Errors: linalg.ErrExtentMismatch when the lengths differ (dst untouched).
func EvalVecInto[T scalar.Float](dst MutableVector[T], src Vector[T]) error {
	if err := SameLen[T](dst, src); err != nil {
		return exprErrorf(opEvalVecInto, err)
	}
	if s, ok := dst.(Slice[T]); ok {
		for i := range s {
			s[i] = src.AtVec(i)
		}

		return nil
	}
	for i, n := 0, src.Len(); i < n; i++ {
		dst.SetVec(i, src.AtVec(i))
	}

	return nil
}

// fillRows is the RowMajor fast path: it walks Data linearly.
func fillRows[T scalar.Float](dst RowMajor[T], src Matrix[T]) {
	// A RowMajor source copies in one go.
	if rm, ok := src.(RowMajor[T]); ok {
		copy(dst.Data, rm.Data)

		return
	}
	var i, j int
	for i = 0; i < dst.Rows; i++ {
		row := dst.RowSlice(i)
		for j = range row {
			row[j] = src.At(i, j)
		}
	}
}
