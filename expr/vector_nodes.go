// SPDX-License-Identifier: MIT

// Package expr: vector node kinds.
//
// Every node is a small value type. Operands are held as interface values
// (borrowed); broadcast scalars are held by value. Binary constructors check
// extents up front and return linalg.ErrExtentMismatch without reading any
// element.
package expr

import (
	"fmt"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- broadcast ----------

// fillVec repeats one scalar n times.
type fillVec[T scalar.Float] struct {
	n int
	v T
}

func (f fillVec[T]) Len() int    { return f.n }
func (f fillVec[T]) AtVec(int) T { return f.v }

// Fill returns a length-n vector whose every element is v.
// A negative n yields an empty vector.
// Complexity: O(1) to build, O(1) per access; allocates nothing.
func Fill[T scalar.Float](n int, v T) Vector[T] {
	if n < 0 {
		n = 0
	}

	return fillVec[T]{n: n, v: v}
}

// ---------- unary ----------

type negVec[T scalar.Float] struct{ a Vector[T] }

func (u negVec[T]) Len() int      { return u.a.Len() }
func (u negVec[T]) AtVec(i int) T { return -u.a.AtVec(i) }

type recipVec[T scalar.Float] struct{ a Vector[T] }

func (u recipVec[T]) Len() int      { return u.a.Len() }
func (u recipVec[T]) AtVec(i int) T { return 1 / u.a.AtVec(i) }

type applyVec[T scalar.Float] struct {
	a Vector[T]
	f func(T) T
}

func (u applyVec[T]) Len() int      { return u.a.Len() }
func (u applyVec[T]) AtVec(i int) T { return u.f(u.a.AtVec(i)) }

// Neg returns the elementwise negation -a.
func Neg[T scalar.Float](a Vector[T]) Vector[T] {
	// -(-a) is a again; skip the double wrap.
	if n, ok := a.(negVec[T]); ok {
		return n.a
	}

	return negVec[T]{a: a}
}

// Recip returns the elementwise reciprocal 1/a. Zero elements produce ±Inf
// following IEEE-754; no error is raised.
func Recip[T scalar.Float](a Vector[T]) Vector[T] { return recipVec[T]{a: a} }

// Apply returns the node f(a[i]). f must be pure: it is called on every
// access, possibly more than once per element.
func Apply[T scalar.Float](a Vector[T], f func(T) T) Vector[T] {
	return applyVec[T]{a: a, f: f}
}

// ---------- binary ----------

type addVec[T scalar.Float] struct{ a, b Vector[T] }

func (n addVec[T]) Len() int      { return n.a.Len() }
func (n addVec[T]) AtVec(i int) T { return n.a.AtVec(i) + n.b.AtVec(i) }

type subVec[T scalar.Float] struct{ a, b Vector[T] }

func (n subVec[T]) Len() int      { return n.a.Len() }
func (n subVec[T]) AtVec(i int) T { return n.a.AtVec(i) - n.b.AtVec(i) }

type mulVec[T scalar.Float] struct{ a, b Vector[T] }

func (n mulVec[T]) Len() int      { return n.a.Len() }
func (n mulVec[T]) AtVec(i int) T { return n.a.AtVec(i) * n.b.AtVec(i) }

type divVec[T scalar.Float] struct{ a, b Vector[T] }

func (n divVec[T]) Len() int      { return n.a.Len() }
func (n divVec[T]) AtVec(i int) T { return n.a.AtVec(i) / n.b.AtVec(i) }

// Add returns the node a + b.
// Errors: linalg.ErrExtentMismatch when a.Len() != b.Len().
// Complexity: O(1) to build; O(1) per access plus operand cost.
func Add[T scalar.Float](a, b Vector[T]) (Vector[T], error) {
	if err := SameLen(a, b); err != nil {
		return nil, exprErrorf(opAdd, err)
	}

	return addVec[T]{a: a, b: b}, nil
}

// Sub returns the node a - b.
// Errors: linalg.ErrExtentMismatch when a.Len() != b.Len().
func Sub[T scalar.Float](a, b Vector[T]) (Vector[T], error) {
	if err := SameLen(a, b); err != nil {
		return nil, exprErrorf(opSub, err)
	}

	return subVec[T]{a: a, b: b}, nil
}

// MulElem returns the elementwise (Hadamard) product a ⊙ b.
// Errors: linalg.ErrExtentMismatch when a.Len() != b.Len().
func MulElem[T scalar.Float](a, b Vector[T]) (Vector[T], error) {
	if err := SameLen(a, b); err != nil {
		return nil, exprErrorf(opMulElem, err)
	}

	return mulVec[T]{a: a, b: b}, nil
}

// DivElem returns the elementwise quotient a / b. Division by zero follows
// IEEE-754 (±Inf or NaN); it is not reported as an error.
// Errors: linalg.ErrExtentMismatch when a.Len() != b.Len().
func DivElem[T scalar.Float](a, b Vector[T]) (Vector[T], error) {
	if err := SameLen(a, b); err != nil {
		return nil, exprErrorf(opDivElem, err)
	}

	return divVec[T]{a: a, b: b}, nil
}

// Scale returns s·a, built as a ⊙ Fill(len(a), s). Extents match by
// construction, so there is no error path.
func Scale[T scalar.Float](a Vector[T], s T) Vector[T] {
	return mulVec[T]{a: a, b: fillVec[T]{n: a.Len(), v: s}}
}

// Shift returns a + s (s added to every element).
func Shift[T scalar.Float](a Vector[T], s T) Vector[T] {
	return addVec[T]{a: a, b: fillVec[T]{n: a.Len(), v: s}}
}

// DivScalar returns a / s elementwise.
func DivScalar[T scalar.Float](a Vector[T], s T) Vector[T] {
	return divVec[T]{a: a, b: fillVec[T]{n: a.Len(), v: s}}
}

// ---------- structural ----------

// matVec is y = m·v evaluated one row at a time.
type matVec[T scalar.Float] struct {
	m Matrix[T]
	v Vector[T]
}

func (n matVec[T]) Len() int {
	r, _ := n.m.Dims()

	return r
}

// AtVec computes Σ_k m[i,k]·v[k] from scratch on every call.
func (n matVec[T]) AtVec(i int) T {
	_, c := n.m.Dims()
	var acc T
	for k := 0; k < c; k++ {
		acc += n.m.At(i, k) * n.v.AtVec(k)
	}

	return acc
}

// MatVec returns the node m·v (length = rows of m). Each element access is an
// O(cols) inner product; nothing is cached.
// Errors: linalg.ErrExtentMismatch when cols(m) != len(v).
func MatVec[T scalar.Float](m Matrix[T], v Vector[T]) (Vector[T], error) {
	if _, c := m.Dims(); c != v.Len() {
		return nil, exprErrorf(opMatVec, fmt.Errorf("columns %d vs len %d: %w", c, v.Len(), linalg.ErrExtentMismatch))
	}

	return matVec[T]{m: m, v: v}, nil
}

// rowOf reads row i of m as a vector.
type rowOf[T scalar.Float] struct {
	m Matrix[T]
	i int
}

func (n rowOf[T]) Len() int {
	_, c := n.m.Dims()

	return c
}
func (n rowOf[T]) AtVec(j int) T { return n.m.At(n.i, j) }

// colOf reads column j of m as a vector.
type colOf[T scalar.Float] struct {
	m Matrix[T]
	j int
}

func (n colOf[T]) Len() int {
	r, _ := n.m.Dims()

	return r
}
func (n colOf[T]) AtVec(i int) T { return n.m.At(i, n.j) }

// Row returns a read-only view of row i of m.
// Errors: linalg.ErrOutOfRange when i is outside [0, rows).
func Row[T scalar.Float](m Matrix[T], i int) (Vector[T], error) {
	if r, _ := m.Dims(); i < 0 || i >= r {
		return nil, exprErrorf(opRow, outOfRange(i, r))
	}

	return rowOf[T]{m: m, i: i}, nil
}

// Col returns a read-only view of column j of m.
// Errors: linalg.ErrOutOfRange when j is outside [0, cols).
func Col[T scalar.Float](m Matrix[T], j int) (Vector[T], error) {
	if _, c := m.Dims(); j < 0 || j >= c {
		return nil, exprErrorf(opCol, outOfRange(j, c))
	}

	return colOf[T]{m: m, j: j}, nil
}

// diagonalOf reads the main diagonal of m.
type diagonalOf[T scalar.Float] struct{ m Matrix[T] }

func (n diagonalOf[T]) Len() int {
	r, c := n.m.Dims()

	return min(r, c)
}
func (n diagonalOf[T]) AtVec(i int) T { return n.m.At(i, i) }

// Diagonal returns a read-only view of the main diagonal of m
// (length min(rows, cols)).
func Diagonal[T scalar.Float](m Matrix[T]) Vector[T] {
	// Diagonal(Diag(v)) is v itself.
	if d, ok := m.(diagMat[T]); ok {
		return d.v
	}

	return diagonalOf[T]{m: m}
}
