// Package expr implements lazily evaluated vector and matrix expressions.
//
// An expression is a tree of small value nodes. Each node describes one
// operation over one or two operands and exposes a uniform capability:
// Len/AtVec for vectors, Dims/At for matrices. Nothing is computed until an
// element is read; nothing is stored until the tree is assigned into a
// container (see package dense) or explicitly materialized.
//
// Node families:
//
//   - terminals:      Slice (vector), RowMajor (matrix); the only writable nodes.
//   - broadcast:      Fill, MatFill, Identity; the scalar is held by value.
//   - unary:          Neg, Recip, Apply, and their Mat* forms; T (transpose).
//   - binary:         Add, Sub, MulElem, DivElem for vectors; MatAdd, MatSub,
//     MatMulElem for matrices (matrices have no elementwise divide).
//   - structural:     Product (matrix product), MatVec, Diag, ColumnOf, RowOf,
//     Row, Col, Diagonal.
//
// Writability is expressed in the type system: read-only nodes implement
// Vector / Matrix only, terminals also implement MutableVector /
// MutableMatrix, so writing through a computed node does not compile.
//
// Extent checks happen when a node is built and return
// linalg.ErrExtentMismatch before any element is touched.
//
// Cost model:
//
//	Elementwise nodes cost O(1) per access plus their operands' cost.
//	A Product node recomputes an O(k) inner product on every access and
//	caches nothing, so fully reading an r×k by k×c product costs O(r·c·k).
//	Products nested inside products multiply these costs; call Materialize
//	on an inner product when it is read more than once.
//
// Nodes borrow their operands. Build them, evaluate them and drop them within
// one statement; never keep a node after the containers it references have
// been resized or swapped.
package expr
