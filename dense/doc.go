// Package dense provides the owning containers of linalg: Vector[T] and
// Matrix[T], each backed by exactly one contiguous buffer.
//
// Both containers are also expression terminals: *Vector[T] implements
// expr.MutableVector[T] and *Matrix[T] implements expr.MutableMatrix[T], so
// they appear directly as operands in expression trees:
//
//	sum, _ := expr.Add[float64](a, expr.Scale[float64](c, 2))
//	err := c.Assign(sum) // safe although c appears on the right
//
// Assignment evaluates the whole right-hand side into a reusable scratch
// buffer and then swaps buffers, so no element of the destination is
// overwritten while the expression can still read it. Compound operations
// (AddAssign, ScaleBy, ...) work element by element in place instead; see
// their docs for the aliasing rule.
//
// Row and column views issued by a Matrix stay valid across Assign (they
// reference the Matrix, not its buffer) but dangle after a Resize that drops
// their row or column. Slices returned by RawData are invalidated by any
// Assign, Resize or Swap.
//
// Matrix also carries column statistics (ColumnMeans, Covariance,
// Correlation) that read rows as observations, and the sanitizers
// ReplaceNonFinite and Clip.
//
// Containers are not safe for concurrent mutation.
package dense
