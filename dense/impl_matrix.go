// SPDX-License-Identifier: MIT

// Package dense - Matrix container (row-major) & accessors.
//
// Purpose:
//   - Own one row-major buffer with the index formula i*cols + j.
//   - Act as a writable expression terminal for package expr.
//   - Offer alias-safe Assign, in-place compound arithmetic, row/column views.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); At/Set: O(1); Assign: O(r*c) + expression cost;
//     Resize: O(r*c); Swap: O(1).
package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtVecClose = "]"
	_fmtSep      = ", "
)

// Matrix is a dense, owning r×c matrix of T in row-major order.
// The zero value is a 0×0 matrix ready to use.
type Matrix[T scalar.Float] struct {
	m       expr.RowMajor[T]
	scratch []T // lazily allocated target of Assign
	line    []T // lazily allocated target of view Assign
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ expr.MutableMatrix[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer                = (*Matrix[float64])(nil)
)

// NewMatrix allocates a zeroed rows×cols matrix.
// Errors: linalg.ErrBadShape when rows or cols is negative.
func NewMatrix[T scalar.Float](rows, cols int) (*Matrix[T], error) {
	rm, err := expr.NewRowMajor[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNewMatrix, err)
	}

	return &Matrix[T]{m: rm}, nil
}

// MatrixFrom copies nested rows into a new matrix.
// Errors: linalg.ErrBadShape when the rows are ragged.
func MatrixFrom[T scalar.Float](rows [][]T) (*Matrix[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxMatrixFrom,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, linalg.ErrBadShape))
		}
		data = append(data, row...)
	}

	return &Matrix[T]{m: expr.RowMajor[T]{Rows: r, Cols: c, Data: data}}, nil
}

// MatrixFromData copies row-major data into a new rows×cols matrix.
// Errors: linalg.ErrBadShape when len(data) != rows*cols or a size is negative.
func MatrixFromData[T scalar.Float](rows, cols int, data []T) (*Matrix[T], error) {
	if err := validateExtent(rows, cols); err != nil {
		return nil, matrixErrorf(ctxMatrixFromData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxMatrixFromData,
			fmt.Errorf("len %d for %dx%d: %w", len(data), rows, cols, linalg.ErrBadShape))
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{m: expr.RowMajor[T]{Rows: rows, Cols: cols, Data: buf}}, nil
}

// MatrixOf evaluates e once into a new matrix.
func MatrixOf[T scalar.Float](e expr.Matrix[T]) *Matrix[T] {
	return &Matrix[T]{m: expr.Materialize(e)}
}

// Identity returns a new n×n identity matrix.
// Errors: linalg.ErrBadShape when n < 0.
func Identity[T scalar.Float](n int) (*Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.m.Data[i*n+i] = 1
	}

	return m, nil
}

// Dims returns (rows, cols).
func (m *Matrix[T]) Dims() (r, c int) { return m.m.Rows, m.m.Cols }

// At returns element (i, j). Unchecked: a column outside [0, cols) inside a
// valid row silently reads the neighbouring row; use AtChecked for untrusted
// indices.
func (m *Matrix[T]) At(i, j int) T { return m.m.Data[i*m.m.Cols+j] }

// Set stores x at (i, j). Unchecked, as At.
func (m *Matrix[T]) Set(i, j int, x T) { m.m.Data[i*m.m.Cols+j] = x }

// AtChecked returns element (i, j) or linalg.ErrOutOfRange.
func (m *Matrix[T]) AtChecked(i, j int) (T, error) {
	if !m.inRange(i, j) {
		return 0, indexErrorf("Matrix", ctxAtChecked, i, j)
	}

	return m.At(i, j), nil
}

// SetChecked stores x at (i, j) or returns linalg.ErrOutOfRange.
func (m *Matrix[T]) SetChecked(i, j int, x T) error {
	if !m.inRange(i, j) {
		return indexErrorf("Matrix", ctxSetChecked, i, j)
	}
	m.Set(i, j, x)

	return nil
}

func (m *Matrix[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.m.Rows && j >= 0 && j < m.m.Cols
}

// RawData exposes the row-major backing slice. It stays valid until the next
// Assign, MulAssign, Resize, Swap or CopyFrom.
func (m *Matrix[T]) RawData() []T { return m.m.Data }

// ---------- assignment ----------

// Assign evaluates e completely into scratch storage and then swaps it in,
// so e may reference m (m = m·m via MulAssign, m = mᵀ for square m, ...).
// Errors: linalg.ErrExtentMismatch when the shapes differ; m is untouched.
func (m *Matrix[T]) Assign(e expr.Matrix[T]) error {
	if err := expr.SameDims[T](m, e); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	n := len(m.m.Data)
	if cap(m.scratch) < n {
		m.scratch = make([]T, n)
	}
	dst := expr.RowMajor[T]{Rows: m.m.Rows, Cols: m.m.Cols, Data: m.scratch[:n]}
	if err := expr.EvalInto[T](dst, e); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	m.m.Data, m.scratch = dst.Data, m.m.Data

	return nil
}

// The compound operations update m[i,j] from e[i,j] in place, one element at
// a time. They are safe when e reads m only at the position being written;
// e = T(m) or a Product involving m is not, so use Assign for those. A panic
// raised inside e leaves m partially updated.

// AddAssign performs m[i,j] += e[i,j].
// Errors: linalg.ErrExtentMismatch (m untouched).
func (m *Matrix[T]) AddAssign(e expr.Matrix[T]) error {
	if err := expr.SameDims[T](m, e); err != nil {
		return matrixErrorf(ctxAddAssign, err)
	}
	m.update(e, func(x, y T) T { return x + y })

	return nil
}

// SubAssign performs m[i,j] -= e[i,j].
func (m *Matrix[T]) SubAssign(e expr.Matrix[T]) error {
	if err := expr.SameDims[T](m, e); err != nil {
		return matrixErrorf(ctxSubAssign, err)
	}
	m.update(e, func(x, y T) T { return x - y })

	return nil
}

// MulElemAssign performs m[i,j] *= e[i,j].
func (m *Matrix[T]) MulElemAssign(e expr.Matrix[T]) error {
	if err := expr.SameDims[T](m, e); err != nil {
		return matrixErrorf(ctxMulElemAssign, err)
	}
	m.update(e, func(x, y T) T { return x * y })

	return nil
}

// MulAssign replaces m with the matrix product m·e. Because the product has
// the shape rows(m)×cols(e), e must be square with cols(m) rows.
// Errors: linalg.ErrExtentMismatch.
func (m *Matrix[T]) MulAssign(e expr.Matrix[T]) error {
	p, err := expr.Product[T](m, e)
	if err != nil {
		return matrixErrorf(ctxMulAssign, err)
	}
	if err = m.Assign(p); err != nil {
		return matrixErrorf(ctxMulAssign, err)
	}

	return nil
}

// ScaleBy multiplies every element by s.
func (m *Matrix[T]) ScaleBy(s T) {
	for k := range m.m.Data {
		m.m.Data[k] *= s
	}
}

// AddScalar adds s to every element.
func (m *Matrix[T]) AddScalar(s T) {
	for k := range m.m.Data {
		m.m.Data[k] += s
	}
}

// update applies m[i,j] = op(m[i,j], e[i,j]) in row-major order.
func (m *Matrix[T]) update(e expr.Matrix[T], op func(x, y T) T) {
	var i, j int
	for i = 0; i < m.m.Rows; i++ {
		row := m.m.RowSlice(i)
		for j = range row {
			row[j] = op(row[j], e.At(i, j))
		}
	}
}

// T returns the transpose of m as a non-owning O(1) view. It reads the
// current contents of m on every access.
func (m *Matrix[E]) T() expr.Matrix[E] { return expr.T[E](m) }

// ---------- extent management ----------

// Resize changes the shape to rows×cols, keeping the overlapping top-left
// block and zero-filling the rest.
// Errors: linalg.ErrBadShape for negative sizes.
func (m *Matrix[T]) Resize(rows, cols int) error {
	if err := validateExtent(rows, cols); err != nil {
		return matrixErrorf(ctxResize, err)
	}
	if rows == m.m.Rows && cols == m.m.Cols {
		return nil
	}
	grown := make([]T, rows*cols)
	keepR, keepC := min(rows, m.m.Rows), min(cols, m.m.Cols)
	for i := 0; i < keepR; i++ {
		copy(grown[i*cols:i*cols+keepC], m.m.RowSlice(i)[:keepC])
	}
	m.m = expr.RowMajor[T]{Rows: rows, Cols: cols, Data: grown}

	return nil
}

// Swap exchanges the contents (and shapes) of m and o in O(1).
func (m *Matrix[T]) Swap(o *Matrix[T]) {
	m.m, o.m = o.m, m.m
	m.scratch, o.scratch = o.scratch, m.scratch
}

// CopyFrom makes m an element-wise copy of e, adopting its shape.
func (m *Matrix[T]) CopyFrom(e expr.Matrix[T]) {
	m.m = expr.Materialize(e)
}

// Clone returns an independent copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{m: expr.Materialize[T](m.m)}
}

// Zero sets every element to 0.
func (m *Matrix[T]) Zero() { clear(m.m.Data) }

// Fill sets every element to x.
func (m *Matrix[T]) Fill(x T) {
	for k := range m.m.Data {
		m.m.Data[k] = x
	}
}

// String renders one bracketed row per line.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.m.Rows; i++ {
		b.WriteString(_fmtRowOpen)
		row := m.m.RowSlice(i)
		for j = range row {
			fmt.Fprintf(&b, "%g", row[j])
			if j+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- predicates ----------

// IsSquare reports rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.m.Rows == m.m.Cols }

// IsZero reports whether every element is exactly 0.
func (m *Matrix[T]) IsZero() bool {
	for _, x := range m.m.Data {
		if x != 0 {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal element is exactly 0.
// Non-square matrices qualify when their off-diagonal part is zero.
func (m *Matrix[T]) IsDiagonal() bool {
	var i, j int
	for i = 0; i < m.m.Rows; i++ {
		for j = 0; j < m.m.Cols; j++ {
			if i != j && m.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is square with exact ones on the diagonal and
// exact zeros elsewhere.
func (m *Matrix[T]) IsIdentity() bool {
	if !m.IsSquare() || !m.IsDiagonal() {
		return false
	}
	for i := 0; i < m.m.Rows; i++ {
		if m.At(i, i) != 1 {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m is square and |m[i,j] − m[j,i]| ≤ tol for
// all i < j. A negative tol is treated as |tol|.
func (m *Matrix[T]) IsSymmetric(tol T) bool {
	if !m.IsSquare() {
		return false
	}
	tol = scalar.Abs(tol)
	var i, j int
	for i = 0; i < m.m.Rows; i++ {
		for j = i + 1; j < m.m.Cols; j++ {
			if scalar.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}
