package expr_test

import (
	"testing"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/stretchr/testify/require"
)

func TestMatFillAndIdentity(t *testing.T) {
	t.Parallel()
	CompareExact(t, [][]float64{{3, 3, 3}, {3, 3, 3}}, expr.MatFill(2, 3, 3.0))
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, expr.Identity[float64](3))

	r, c := expr.MatFill(-1, 2, 1.0).Dims()
	require.Equal(t, [2]int{0, 2}, [2]int{r, c})
}

func TestUnaryMatrixNodes(t *testing.T) {
	t.Parallel()
	m := MustRowMajor(t, [][]float64{{1, -2}, {4, 0.5}})

	CompareExact(t, [][]float64{{-1, 2}, {-4, -0.5}}, expr.MatNeg[float64](m))
	CompareExact(t, [][]float64{{1, -0.5}, {0.25, 2}}, expr.MatRecip[float64](m))
	CompareExact(t, [][]float64{{2, -4}, {8, 1}},
		expr.MatApply[float64](m, func(x float64) float64 { return 2 * x }))
	require.Equal(t, expr.Matrix[float64](m), expr.MatNeg(expr.MatNeg[float64](m)))
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	m := MustRowMajor(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	mt := expr.T[float64](m)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)

	// T(T(m)) unwraps to the operand and agrees at every index.
	tt := expr.T(mt)
	require.Equal(t, expr.Matrix[float64](m), tt)

	// Round trip through a non-transpose node still agrees element-wise.
	neg := expr.MatNeg[float64](m)
	rt := expr.T(expr.T(neg))
	r, c := neg.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Equal(t, neg.At(i, j), rt.At(i, j))
		}
	}
}

func TestBinaryMatrixNodes(t *testing.T) {
	t.Parallel()
	a := MustRowMajor(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRowMajor(t, [][]float64{{5, 6}, {7, 8}})
	wrongRows := MustRowMajor(t, [][]float64{{1, 2}})
	wrongCols := MustRowMajor(t, [][]float64{{1}, {2}})

	tests := []struct {
		name  string
		build func(a, b expr.Matrix[float64]) (expr.Matrix[float64], error)
		want  [][]float64
	}{
		{"MatAdd", expr.MatAdd[float64], [][]float64{{6, 8}, {10, 12}}},
		{"MatSub", expr.MatSub[float64], [][]float64{{-4, -4}, {-4, -4}}},
		{"MatMulElem", expr.MatMulElem[float64], [][]float64{{5, 12}, {21, 32}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.build(a, b)
			require.NoError(t, err)
			CompareExact(t, tc.want, n)

			_, err = tc.build(a, wrongRows)
			require.ErrorIs(t, err, linalg.ErrExtentMismatch)
			_, err = tc.build(a, wrongCols)
			require.ErrorIs(t, err, linalg.ErrExtentMismatch)
		})
	}

	CompareExact(t, [][]float64{{-2, -4}, {-6, -8}}, expr.MatScale[float64](a, -2))
}

func TestProduct(t *testing.T) {
	t.Parallel()
	a := MustRowMajor(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRowMajor(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := expr.Product[float64](a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)

	_, err = expr.Product[float64](a, a)
	require.ErrorIs(t, err, linalg.ErrExtentMismatch)

	// Identity is neutral on both sides.
	left, err := expr.Product(expr.Identity[float64](2), expr.Matrix[float64](a))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, left)
}

func TestNestedProductMatchesMaterialized(t *testing.T) {
	t.Parallel()
	a := RandRowMajor(t, 4, 4, 7)
	ab, err := expr.Product[float64](a, a)
	require.NoError(t, err)
	lazy, err := expr.Product(ab, expr.Matrix[float64](a))
	require.NoError(t, err)

	inner := expr.Materialize(ab)
	eager, err := expr.Product[float64](inner, a)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.InDelta(t, eager.At(i, j), lazy.At(i, j), 1e-12)
		}
	}
}

func TestVectorEmbeddings(t *testing.T) {
	t.Parallel()
	v := expr.Slice[float64]{1, 2, 3}

	CompareExact(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, expr.Diag[float64](v))
	CompareExact(t, [][]float64{{1}, {2}, {3}}, expr.ColumnOf[float64](v))
	CompareExact(t, [][]float64{{1, 2, 3}}, expr.RowOf[float64](v))

	// Outer product through the embeddings.
	outer, err := expr.Product(expr.ColumnOf[float64](v), expr.RowOf[float64](v))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}}, outer)

	// Inner product as a 1×1 matrix.
	inner, err := expr.Product(expr.RowOf[float64](v), expr.ColumnOf[float64](v))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{14}}, inner)
}

func TestNewRowMajorRejectsNegativeShape(t *testing.T) {
	t.Parallel()
	_, err := expr.NewRowMajor[float64](-1, 2)
	require.ErrorIs(t, err, linalg.ErrBadShape)

	m, err := expr.NewRowMajor[float32](0, 5)
	require.NoError(t, err)
	require.Empty(t, m.Data)
}
