// SPDX-License-Identifier: MIT

// Package expr: node capabilities and the two terminal storage nodes.
// This file contains ONLY the public interfaces and terminals; node kinds live
// in vector_nodes.go and matrix_nodes.go.
package expr

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Vector is a read-only, indexable sequence of T.
// AtVec(i) is valid for 0 ≤ i < Len(); no bounds checking is promised beyond
// what the Go runtime does for the underlying storage.
type Vector[T scalar.Float] interface {
	// Len returns the number of elements. Complexity: O(1).
	Len() int
	// AtVec returns element i. Complexity: node dependent (O(1) for
	// elementwise nodes, O(k) for MatVec).
	AtVec(i int) T
}

// MutableVector is a Vector that can be written element by element.
// Only terminal storage nodes implement it.
type MutableVector[T scalar.Float] interface {
	Vector[T]
	// SetVec stores v at index i.
	SetVec(i int, v T)
}

// Matrix is a read-only r×c grid of T addressed by zero-based (row, col).
type Matrix[T scalar.Float] interface {
	// Dims returns the number of rows and columns. Complexity: O(1).
	Dims() (r, c int)
	// At returns element (i, j). Complexity: node dependent.
	At(i, j int) T
}

// MutableMatrix is a Matrix that can be written element by element.
// Only terminal storage nodes implement it.
type MutableMatrix[T scalar.Float] interface {
	Matrix[T]
	// Set stores v at (i, j).
	Set(i, j int, v T)
}

// Slice is the terminal vector node: a plain slice viewed as a Vector.
// Converting a []T to Slice[T] allocates nothing.
type Slice[T scalar.Float] []T

// Compile-time assertions for the terminals.
var (
	_ MutableVector[float64] = Slice[float64](nil)
	_ MutableMatrix[float64] = RowMajor[float64]{}
)

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// AtVec returns s[i].
func (s Slice[T]) AtVec(i int) T { return s[i] }

// SetVec stores v in s[i].
func (s Slice[T]) SetVec(i int, v T) { s[i] = v }

// RowMajor is the terminal matrix node: Rows×Cols elements stored in Data in
// row-major order (offset = i*Cols + j).
//
// At/Set do no bounds checking of their own. An out-of-range column inside a
// valid row reads or writes a neighbouring row; use the checked accessors of
// dense.Matrix when indices come from untrusted input.
type RowMajor[T scalar.Float] struct {
	Rows, Cols int // extents (≥ 0)
	Data       []T // len(Data) == Rows*Cols
}

// NewRowMajor allocates a zeroed rows×cols terminal.
// Errors: linalg.ErrBadShape when rows or cols is negative.
// Complexity: O(rows*cols).
func NewRowMajor[T scalar.Float](rows, cols int) (RowMajor[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return RowMajor[T]{}, exprErrorf(opNewRowMajor, err)
	}

	return RowMajor[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}, nil
}

// Dims returns (Rows, Cols).
func (m RowMajor[T]) Dims() (r, c int) { return m.Rows, m.Cols }

// At returns element (i, j).
func (m RowMajor[T]) At(i, j int) T { return m.Data[i*m.Cols+j] }

// Set stores v at (i, j).
func (m RowMajor[T]) Set(i, j int, v T) { m.Data[i*m.Cols+j] = v }

// RowSlice returns row i as a sub-slice of Data (shares storage).
func (m RowMajor[T]) RowSlice(i int) []T {
	return m.Data[i*m.Cols : (i+1)*m.Cols : (i+1)*m.Cols]
}
