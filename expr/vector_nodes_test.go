package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Parallel()
	f := expr.Fill(3, 2.5)
	require.Equal(t, []float64{2.5, 2.5, 2.5}, VecValues(f))
	require.Equal(t, 0, expr.Fill(-4, 1.0).Len())
}

func TestUnaryVectorNodes(t *testing.T) {
	t.Parallel()
	a := expr.Slice[float64]{1, -2, 4}

	require.Equal(t, []float64{-1, 2, -4}, VecValues(expr.Neg[float64](a)))
	require.Equal(t, []float64{1, -0.5, 0.25}, VecValues(expr.Recip[float64](a)))
	require.Equal(t, []float64{1, 4, 16}, VecValues(expr.Apply[float64](a, func(x float64) float64 { return x * x })))

	// Double negation hands back the operand itself.
	require.Equal(t, expr.Vector[float64](a), expr.Neg(expr.Neg[float64](a)))

	// Reciprocal of zero follows IEEE-754.
	z := expr.Recip[float64](expr.Slice[float64]{0})
	require.True(t, math.IsInf(z.AtVec(0), 1))
}

func TestBinaryVectorNodes(t *testing.T) {
	t.Parallel()
	a := expr.Slice[float64]{1, 2, 3}
	b := expr.Slice[float64]{4, 5, 6}

	tests := []struct {
		name  string
		build func(a, b expr.Vector[float64]) (expr.Vector[float64], error)
		want  []float64
	}{
		{"Add", expr.Add[float64], []float64{5, 7, 9}},
		{"Sub", expr.Sub[float64], []float64{-3, -3, -3}},
		{"MulElem", expr.MulElem[float64], []float64{4, 10, 18}},
		{"DivElem", expr.DivElem[float64], []float64{0.25, 0.4, 0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.build(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, VecValues(n))

			_, err = tc.build(a, expr.Slice[float64]{1})
			require.ErrorIs(t, err, linalg.ErrExtentMismatch)
		})
	}
}

func TestScalarBroadcasts(t *testing.T) {
	t.Parallel()
	a := expr.Slice[float64]{2, 4}
	require.Equal(t, []float64{6, 12}, VecValues(expr.Scale[float64](a, 3)))
	require.Equal(t, []float64{3, 5}, VecValues(expr.Shift[float64](a, 1)))
	require.Equal(t, []float64{1, 2}, VecValues(expr.DivScalar[float64](a, 2)))
}

func TestAddThenSubRoundTrip(t *testing.T) {
	t.Parallel()
	a := expr.Slice[float64]{0.1, -7, 3.25, 1e10}
	b := expr.Slice[float64]{0.2, 2, -1.5, 1}
	sum, err := expr.Add[float64](a, b)
	require.NoError(t, err)
	back, err := expr.Sub(sum, expr.Vector[float64](b))
	require.NoError(t, err)
	for i := range a {
		require.InDelta(t, a[i], back.AtVec(i), 1e-15*math.Max(1, math.Abs(a[i])))
	}

	// Small integers are exact.
	ai := expr.Slice[float32]{1, 2, 3}
	bi := expr.Slice[float32]{7, -8, 9}
	s32, err := expr.Add[float32](ai, bi)
	require.NoError(t, err)
	d32, err := expr.Sub(s32, expr.Vector[float32](bi))
	require.NoError(t, err)
	for i := range ai {
		require.Equal(t, ai[i], d32.AtVec(i))
	}
}

func TestMatVec(t *testing.T) {
	t.Parallel()
	m := MustRowMajor(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := expr.MatVec[float64](m, expr.Slice[float64]{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, VecValues(y))

	_, err = expr.MatVec[float64](m, expr.Slice[float64]{1, 2, 3})
	require.ErrorIs(t, err, linalg.ErrExtentMismatch)
}

func TestRowColDiagonalViews(t *testing.T) {
	t.Parallel()
	m := MustRowMajor(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, err := expr.Row[float64](m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, VecValues(r))

	c, err := expr.Col[float64](m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, VecValues(c))

	require.Equal(t, []float64{1, 5}, VecValues(expr.Diagonal[float64](m)))

	_, err = expr.Row[float64](m, 2)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = expr.Col[float64](m, -1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)

	// Diagonal of a diagonal embedding is the embedded vector.
	v := expr.Slice[float64]{7, 8}
	require.Equal(t, expr.Vector[float64](v), expr.Diagonal(expr.Diag[float64](v)))
}

func TestNodesSeeOperandUpdates(t *testing.T) {
	t.Parallel()
	a := expr.Slice[float64]{1, 1}
	n := expr.Scale[float64](a, 2)
	a[0] = 10
	require.Equal(t, 20.0, n.AtVec(0))
}
