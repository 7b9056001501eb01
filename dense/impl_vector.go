// SPDX-License-Identifier: MIT

// Package dense - Vector container.
//
// Purpose:
//   - Own one contiguous buffer and expose it as an expression terminal.
//   - Provide alias-safe assignment, in-place compound arithmetic and norms.
//
// Complexity quicksheet:
//   - NewVector: O(n); AtVec/SetVec: O(1); Assign: O(n) + cost of the
//     expression; Norm/Dot/Sum: O(n) with compensated accumulation.
package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// Vector is a dense, owning vector of T. The zero value is an empty vector
// ready to use.
type Vector[T scalar.Float] struct {
	data    expr.Slice[T]
	scratch expr.Slice[T] // lazily allocated target of Assign
}

// Compile-time assertions.
var (
	_ expr.MutableVector[float64] = (*Vector[float64])(nil)
	_ fmt.Stringer                = (*Vector[float64])(nil)
)

// NewVector allocates a zeroed vector of length n.
// Errors: linalg.ErrBadShape when n < 0.
func NewVector[T scalar.Float](n int) (*Vector[T], error) {
	if err := validateExtent(n, 1); err != nil {
		return nil, vectorErrorf(ctxNewVector, err)
	}

	return &Vector[T]{data: make(expr.Slice[T], n)}, nil
}

// VectorFrom copies src into a new vector.
func VectorFrom[T scalar.Float](src []T) *Vector[T] {
	data := make(expr.Slice[T], len(src))
	copy(data, src)

	return &Vector[T]{data: data}
}

// VectorOf evaluates e once into a new vector.
func VectorOf[T scalar.Float](e expr.Vector[T]) *Vector[T] {
	return &Vector[T]{data: expr.MaterializeVec(e)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// AtVec returns element i. It is unchecked: an out-of-range i panics through
// the runtime bounds check.
func (v *Vector[T]) AtVec(i int) T { return v.data[i] }

// SetVec stores x at index i (unchecked, as AtVec).
func (v *Vector[T]) SetVec(i int, x T) { v.data[i] = x }

// AtChecked returns element i or linalg.ErrOutOfRange.
func (v *Vector[T]) AtChecked(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vecIndexErrorf(ctxAtChecked, i)
	}

	return v.data[i], nil
}

// SetChecked stores x at index i or returns linalg.ErrOutOfRange.
func (v *Vector[T]) SetChecked(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vecIndexErrorf(ctxSetChecked, i)
	}
	v.data[i] = x

	return nil
}

// RawData exposes the backing slice. It stays valid until the next Assign,
// Resize, Swap or CopyFrom.
func (v *Vector[T]) RawData() []T { return v.data }

// ---------- assignment ----------

// Assign evaluates e completely, then makes the result the contents of v.
// e may reference v itself: v = a + 2·v is well defined.
//
// Errors: linalg.ErrExtentMismatch when e.Len() != v.Len(); v is untouched.
// Complexity: O(n) plus the expression cost; no allocation after the first
// call for a given length.
func (v *Vector[T]) Assign(e expr.Vector[T]) error {
	if err := expr.SameLen[T](v, e); err != nil {
		return vectorErrorf(ctxAssign, err)
	}
	n := len(v.data)
	if cap(v.scratch) < n {
		v.scratch = make(expr.Slice[T], n)
	}
	v.scratch = v.scratch[:n]
	for i := range v.scratch {
		v.scratch[i] = e.AtVec(i)
	}
	v.data, v.scratch = v.scratch, v.data

	return nil
}

// The compound operations below update v[i] from e[i] one index at a time,
// in place. They are safe when e reads v only at the index being written
// (v += v, v *= 2·v). An expression that reads other elements of v, such as
// MatVec(m, v), sees a partially updated vector: use Assign for those.
// A panic raised inside e (for example from an Apply function) leaves v
// partially updated.

// AddAssign performs v[i] += e[i].
// Errors: linalg.ErrExtentMismatch (v untouched).
func (v *Vector[T]) AddAssign(e expr.Vector[T]) error {
	if err := expr.SameLen[T](v, e); err != nil {
		return vectorErrorf(ctxAddAssign, err)
	}
	for i := range v.data {
		v.data[i] += e.AtVec(i)
	}

	return nil
}

// SubAssign performs v[i] -= e[i].
func (v *Vector[T]) SubAssign(e expr.Vector[T]) error {
	if err := expr.SameLen[T](v, e); err != nil {
		return vectorErrorf(ctxSubAssign, err)
	}
	for i := range v.data {
		v.data[i] -= e.AtVec(i)
	}

	return nil
}

// MulElemAssign performs v[i] *= e[i].
func (v *Vector[T]) MulElemAssign(e expr.Vector[T]) error {
	if err := expr.SameLen[T](v, e); err != nil {
		return vectorErrorf(ctxMulElemAssign, err)
	}
	for i := range v.data {
		v.data[i] *= e.AtVec(i)
	}

	return nil
}

// DivAssign performs v[i] /= e[i] (IEEE-754 on zero divisors).
func (v *Vector[T]) DivAssign(e expr.Vector[T]) error {
	if err := expr.SameLen[T](v, e); err != nil {
		return vectorErrorf(ctxDivAssign, err)
	}
	for i := range v.data {
		v.data[i] /= e.AtVec(i)
	}

	return nil
}

// ScaleBy multiplies every element by s.
func (v *Vector[T]) ScaleBy(s T) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// AddScalar adds s to every element.
func (v *Vector[T]) AddScalar(s T) {
	for i := range v.data {
		v.data[i] += s
	}
}

// ---------- extent management ----------

// Resize changes the length to n, keeping the leading min(n, Len()) elements
// and zero-filling the rest.
// Errors: linalg.ErrBadShape when n < 0.
func (v *Vector[T]) Resize(n int) error {
	if err := validateExtent(n, 1); err != nil {
		return vectorErrorf(ctxResize, err)
	}
	if n <= cap(v.data) {
		old := len(v.data)
		v.data = v.data[:n]
		if n > old {
			clear(v.data[old:])
		}

		return nil
	}
	grown := make(expr.Slice[T], n)
	copy(grown, v.data)
	v.data = grown

	return nil
}

// Swap exchanges the contents (and lengths) of v and o in O(1).
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data, o.data = o.data, v.data
	v.scratch, o.scratch = o.scratch, v.scratch
}

// CopyFrom makes v an element-wise copy of e, adopting its length.
func (v *Vector[T]) CopyFrom(e expr.Vector[T]) {
	v.data = expr.MaterializeVec(e)
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] { return VectorFrom[T](v.data) }

// Zero sets every element to 0.
func (v *Vector[T]) Zero() { clear(v.data) }

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// String renders the vector as "[a, b, c]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString(_fmtVecClose)

	return b.String()
}

// ---------- reductions ----------

// Sum returns Σ v[i] with compensated accumulation (0 for an empty vector).
func (v *Vector[T]) Sum() T { return scalar.Sum[T](v.data) }

// Min returns the smallest element. NaN propagates.
// Errors: linalg.ErrEmpty for an empty vector.
func (v *Vector[T]) Min() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(ctxMin, linalg.ErrEmpty)
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = min(m, x)
	}

	return m, nil
}

// Max returns the largest element. NaN propagates.
// Errors: linalg.ErrEmpty for an empty vector.
func (v *Vector[T]) Max() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(ctxMax, linalg.ErrEmpty)
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = max(m, x)
	}

	return m, nil
}

// Dot returns Σ v[i]·e[i], accumulated with compensated FMA products.
// Errors: linalg.ErrExtentMismatch.
func (v *Vector[T]) Dot(e expr.Vector[T]) (T, error) {
	if err := expr.SameLen[T](v, e); err != nil {
		return 0, vectorErrorf(ctxDot, err)
	}

	return dot[T](v, e), nil
}

// SquaredNorm returns Σ v[i]².
func (v *Vector[T]) SquaredNorm() T { return scalar.Dot[T](v.data, v.data) }

// Norm returns the Euclidean norm, free of intermediate overflow.
func (v *Vector[T]) Norm() T { return scalar.Norm2[T](v.data) }

// Normal returns a unit-length copy of v.
// Errors: linalg.ErrZeroVector when ‖v‖ == 0.
func (v *Vector[T]) Normal() (*Vector[T], error) {
	n := v.Norm()
	if n == 0 {
		return nil, vectorErrorf(ctxNormal, linalg.ErrZeroVector)
	}

	return VectorOf(expr.DivScalar[T](v, n)), nil
}

// Reciprocal returns a new vector of 1/v[i].
func (v *Vector[T]) Reciprocal() *Vector[T] { return VectorOf(expr.Recip[T](v)) }

// Project returns the component of v along onto: (v·u / u·u)·u.
// Errors: linalg.ErrExtentMismatch, linalg.ErrZeroVector when onto is zero.
func (v *Vector[T]) Project(onto expr.Vector[T]) (*Vector[T], error) {
	if err := expr.SameLen[T](v, onto); err != nil {
		return nil, vectorErrorf(ctxProject, err)
	}
	uu := dot(onto, onto)
	if uu == 0 {
		return nil, vectorErrorf(ctxProject, linalg.ErrZeroVector)
	}

	return VectorOf(expr.Scale(onto, dot[T](v, onto)/uu)), nil
}

// Reject returns the component of v orthogonal to onto: v − Project(onto).
// Errors: as Project.
func (v *Vector[T]) Reject(onto expr.Vector[T]) (*Vector[T], error) {
	p, err := v.Project(onto)
	if err != nil {
		return nil, vectorErrorf(ctxReject, err)
	}
	diff, err := expr.Sub[T](v, p)
	if err != nil {
		return nil, vectorErrorf(ctxReject, err)
	}
	if err = p.Assign(diff); err != nil {
		return nil, vectorErrorf(ctxReject, err)
	}

	return p, nil
}

// dot accumulates Σ a[i]·b[i] over a.Len() terms.
func dot[T scalar.Float](a, b expr.Vector[T]) T {
	var acc scalar.Accumulator
	for i, n := 0, a.Len(); i < n; i++ {
		acc.AddProduct(float64(a.AtVec(i)), float64(b.AtVec(i)))
	}

	return T(acc.Value())
}
