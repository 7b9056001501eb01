// SPDX-License-Identifier: MIT

// Package dense - row and column views.
//
// A view is a (matrix, index) pair: it holds no data of its own and reads
// and writes the parent on every access. Views survive Assign on the parent
// and dangle once a Resize drops their row or column.
package dense

import (
	"fmt"

	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// RowView is a read-write handle on one row of a Matrix.
type RowView[T scalar.Float] struct {
	m *Matrix[T]
	i int
}

// ColView is a read-write handle on one column of a Matrix.
type ColView[T scalar.Float] struct {
	m *Matrix[T]
	j int
}

// Compile-time assertions.
var (
	_ expr.MutableVector[float64] = RowView[float64]{}
	_ expr.MutableVector[float64] = ColView[float64]{}
)

// Row returns a read-write view of row i.
// Errors: linalg.ErrOutOfRange when i is outside [0, rows).
func (m *Matrix[T]) Row(i int) (RowView[T], error) {
	if i < 0 || i >= m.m.Rows {
		return RowView[T]{}, indexErrorf("Matrix", ctxRow, i, 0)
	}

	return RowView[T]{m: m, i: i}, nil
}

// Column returns a read-write view of column j.
// Errors: linalg.ErrOutOfRange when j is outside [0, cols).
func (m *Matrix[T]) Column(j int) (ColView[T], error) {
	if j < 0 || j >= m.m.Cols {
		return ColView[T]{}, indexErrorf("Matrix", ctxColumn, 0, j)
	}

	return ColView[T]{m: m, j: j}, nil
}

// Len returns the number of columns of the parent.
func (r RowView[T]) Len() int { return r.m.m.Cols }

// AtVec returns parent element (i, j).
func (r RowView[T]) AtVec(j int) T { return r.m.At(r.i, j) }

// SetVec stores x at parent element (i, j).
func (r RowView[T]) SetVec(j int, x T) { r.m.Set(r.i, j, x) }

// Index returns the row index inside the parent.
func (r RowView[T]) Index() int { return r.i }

// Assign evaluates e fully, then writes it into the row. e may read the
// parent matrix, including this very row.
// Errors: linalg.ErrExtentMismatch.
func (r RowView[T]) Assign(e expr.Vector[T]) error {
	line, err := r.m.evalLine(r, e)
	if err != nil {
		return fmt.Errorf("RowView.%s: %w", ctxAssign, err)
	}
	copy(r.m.m.RowSlice(r.i), line)

	return nil
}

// Len returns the number of rows of the parent.
func (c ColView[T]) Len() int { return c.m.m.Rows }

// AtVec returns parent element (i, j).
func (c ColView[T]) AtVec(i int) T { return c.m.At(i, c.j) }

// SetVec stores x at parent element (i, j).
func (c ColView[T]) SetVec(i int, x T) { c.m.Set(i, c.j, x) }

// Index returns the column index inside the parent.
func (c ColView[T]) Index() int { return c.j }

// Assign evaluates e fully, then writes it into the column.
// Errors: linalg.ErrExtentMismatch.
func (c ColView[T]) Assign(e expr.Vector[T]) error {
	line, err := c.m.evalLine(c, e)
	if err != nil {
		return fmt.Errorf("ColView.%s: %w", ctxAssign, err)
	}
	for i, x := range line {
		c.m.Set(i, c.j, x)
	}

	return nil
}

// evalLine checks extents and evaluates e into the matrix's reusable line
// buffer.
func (m *Matrix[T]) evalLine(view, e expr.Vector[T]) ([]T, error) {
	if err := expr.SameLen(view, e); err != nil {
		return nil, err
	}
	n := e.Len()
	if cap(m.line) < n {
		m.line = make([]T, n)
	}
	line := m.line[:n]
	for i := range line {
		line[i] = e.AtVec(i)
	}

	return line, nil
}
