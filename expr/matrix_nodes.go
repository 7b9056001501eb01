// SPDX-License-Identifier: MIT

// Package expr: matrix node kinds.
//
// Matrices define no elementwise divide. Binary constructors validate extents
// (rows first, then columns) before returning a node.
package expr

import (
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- broadcast ----------

type fillMat[T scalar.Float] struct {
	r, c int
	v    T
}

func (f fillMat[T]) Dims() (r, c int) { return f.r, f.c }
func (f fillMat[T]) At(int, int) T    { return f.v }

// MatFill returns an r×c matrix whose every element is v.
// Negative extents are clamped to zero.
func MatFill[T scalar.Float](r, c int, v T) Matrix[T] {
	return fillMat[T]{r: max(r, 0), c: max(c, 0), v: v}
}

type identityMat[T scalar.Float] struct{ n int }

func (m identityMat[T]) Dims() (r, c int) { return m.n, m.n }

func (m identityMat[T]) At(i, j int) T {
	if i == j {
		return 1
	}

	return 0
}

// Identity returns the n×n identity as a node; it stores nothing.
func Identity[T scalar.Float](n int) Matrix[T] {
	return identityMat[T]{n: max(n, 0)}
}

// ---------- unary ----------

type negMat[T scalar.Float] struct{ a Matrix[T] }

func (u negMat[T]) Dims() (r, c int) { return u.a.Dims() }
func (u negMat[T]) At(i, j int) T    { return -u.a.At(i, j) }

type recipMat[T scalar.Float] struct{ a Matrix[T] }

func (u recipMat[T]) Dims() (r, c int) { return u.a.Dims() }
func (u recipMat[T]) At(i, j int) T    { return 1 / u.a.At(i, j) }

type applyMat[T scalar.Float] struct {
	a Matrix[T]
	f func(T) T
}

func (u applyMat[T]) Dims() (r, c int) { return u.a.Dims() }
func (u applyMat[T]) At(i, j int) T    { return u.f(u.a.At(i, j)) }

// transposed swaps the index order of its operand.
type transposed[T scalar.Float] struct{ a Matrix[T] }

func (u transposed[T]) Dims() (r, c int) {
	r, c = u.a.Dims()

	return c, r
}
func (u transposed[T]) At(i, j int) T { return u.a.At(j, i) }

// MatNeg returns -a.
func MatNeg[T scalar.Float](a Matrix[T]) Matrix[T] {
	if n, ok := a.(negMat[T]); ok {
		return n.a
	}

	return negMat[T]{a: a}
}

// MatRecip returns the elementwise reciprocal of a (IEEE-754 on zeros).
func MatRecip[T scalar.Float](a Matrix[T]) Matrix[T] { return recipMat[T]{a: a} }

// MatApply returns the node f(a[i,j]). f must be pure.
func MatApply[T scalar.Float](a Matrix[T], f func(T) T) Matrix[T] {
	return applyMat[T]{a: a, f: f}
}

// T returns the transpose of a. Construction is O(1): the node only swaps the
// index order on access. T(T(a)) returns a itself.
func T[E scalar.Float](a Matrix[E]) Matrix[E] {
	if t, ok := a.(transposed[E]); ok {
		return t.a
	}

	return transposed[E]{a: a}
}

// ---------- binary ----------

type addMat[T scalar.Float] struct{ a, b Matrix[T] }

func (n addMat[T]) Dims() (r, c int) { return n.a.Dims() }
func (n addMat[T]) At(i, j int) T    { return n.a.At(i, j) + n.b.At(i, j) }

type subMat[T scalar.Float] struct{ a, b Matrix[T] }

func (n subMat[T]) Dims() (r, c int) { return n.a.Dims() }
func (n subMat[T]) At(i, j int) T    { return n.a.At(i, j) - n.b.At(i, j) }

type mulMat[T scalar.Float] struct{ a, b Matrix[T] }

func (n mulMat[T]) Dims() (r, c int) { return n.a.Dims() }
func (n mulMat[T]) At(i, j int) T    { return n.a.At(i, j) * n.b.At(i, j) }

// MatAdd returns the node a + b.
// Errors: linalg.ErrExtentMismatch when the shapes differ.
func MatAdd[T scalar.Float](a, b Matrix[T]) (Matrix[T], error) {
	if err := SameDims(a, b); err != nil {
		return nil, exprErrorf(opMatAdd, err)
	}

	return addMat[T]{a: a, b: b}, nil
}

// MatSub returns the node a - b.
// Errors: linalg.ErrExtentMismatch when the shapes differ.
func MatSub[T scalar.Float](a, b Matrix[T]) (Matrix[T], error) {
	if err := SameDims(a, b); err != nil {
		return nil, exprErrorf(opMatSub, err)
	}

	return subMat[T]{a: a, b: b}, nil
}

// MatMulElem returns the elementwise (Hadamard) product a ⊙ b.
// Errors: linalg.ErrExtentMismatch when the shapes differ.
func MatMulElem[T scalar.Float](a, b Matrix[T]) (Matrix[T], error) {
	if err := SameDims(a, b); err != nil {
		return nil, exprErrorf(opMatMulElem, err)
	}

	return mulMat[T]{a: a, b: b}, nil
}

// MatScale returns s·a.
func MatScale[T scalar.Float](a Matrix[T], s T) Matrix[T] {
	r, c := a.Dims()

	return mulMat[T]{a: a, b: fillMat[T]{r: r, c: c, v: s}}
}

// ---------- structural ----------

// product is a·b with no caching of any kind.
type product[T scalar.Float] struct{ a, b Matrix[T] }

func (n product[T]) Dims() (r, c int) {
	r, _ = n.a.Dims()
	_, c = n.b.Dims()

	return r, c
}

// At recomputes the inner product over k on every call.
func (n product[T]) At(i, j int) T {
	_, k := n.a.Dims()
	var acc T
	for p := 0; p < k; p++ {
		acc += n.a.At(i, p) * n.b.At(p, j)
	}

	return acc
}

// Product returns the matrix product a·b, an (rows(a) × cols(b)) node.
//
// Cost: every At call is an O(k) inner product, k = cols(a). Reading the full
// result costs O(r·c·k); a Product used as an operand of another Product is
// recomputed for each outer access. Materialize the inner product first when
// it is read more than once.
//
// Errors: linalg.ErrExtentMismatch when cols(a) != rows(b).
func Product[T scalar.Float](a, b Matrix[T]) (Matrix[T], error) {
	if err := InnerDims(a, b); err != nil {
		return nil, exprErrorf(opProduct, err)
	}

	return product[T]{a: a, b: b}, nil
}

// diagMat embeds a vector on the diagonal of an n×n matrix.
type diagMat[T scalar.Float] struct{ v Vector[T] }

func (d diagMat[T]) Dims() (r, c int) {
	n := d.v.Len()

	return n, n
}

func (d diagMat[T]) At(i, j int) T {
	if i != j {
		return 0
	}

	return d.v.AtVec(i)
}

// Diag returns the n×n diagonal matrix with v on its main diagonal.
// Nothing is copied.
func Diag[T scalar.Float](v Vector[T]) Matrix[T] { return diagMat[T]{v: v} }

type columnOf[T scalar.Float] struct{ v Vector[T] }

func (n columnOf[T]) Dims() (r, c int) { return n.v.Len(), 1 }
func (n columnOf[T]) At(i, _ int) T    { return n.v.AtVec(i) }

type rowVecOf[T scalar.Float] struct{ v Vector[T] }

func (n rowVecOf[T]) Dims() (r, c int) { return 1, n.v.Len() }
func (n rowVecOf[T]) At(_, j int) T    { return n.v.AtVec(j) }

// ColumnOf views v as an n×1 matrix, so vectors take part in Product.
func ColumnOf[T scalar.Float](v Vector[T]) Matrix[T] { return columnOf[T]{v: v} }

// RowOf views v as a 1×n matrix.
func RowOf[T scalar.Float](v Vector[T]) Matrix[T] { return rowVecOf[T]{v: v} }
