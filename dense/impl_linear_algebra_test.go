package dense_test

import (
	"testing"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/dense"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/solve"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Invert(t *testing.T) {
	t.Parallel()
	m := MustMatrix(t, [][]float64{{4, 7}, {2, 6}})
	require.NoError(t, m.Invert())
	CompareClose(t, MustMatrix(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), m, 0, 1e-15)

	// Inverting twice returns the original.
	require.NoError(t, m.Invert())
	CompareClose(t, MustMatrix(t, [][]float64{{4, 7}, {2, 6}}), m, 1e-14, 1e-14)
}

func TestMatrix_InvertProperties(t *testing.T) {
	t.Parallel()
	for _, n := range []int{3, 6, 10} {
		a := DominantMatrix(t, n, int64(n))
		inv := a.Clone()
		require.NoError(t, inv.Invert())

		p, err := expr.Product[float64](a, inv)
		require.NoError(t, err)
		id, err := dense.Identity[float64](n)
		require.NoError(t, err)
		CompareClose(t, id, dense.MatrixOf(p), 0, 1e-13)

		back := inv.Clone()
		require.NoError(t, back.Invert(solve.WithRefinement(2)))
		CompareClose(t, a, back, 1e-12, 1e-12)
	}
}

func TestMatrix_InvertFailures(t *testing.T) {
	t.Parallel()
	rect := MustMatrix(t, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, rect.Invert(), linalg.ErrNonSquare)

	sing := MustMatrix(t, [][]float64{{1, 2}, {3, 6}})
	require.ErrorIs(t, sing.Invert(), linalg.ErrSingular)
	CompareExact(t, [][]float64{{1, 2}, {3, 6}}, sing)
}

func TestMatrix_SetIdentityDetTrace(t *testing.T) {
	t.Parallel()
	m := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	d, err := m.Det()
	require.NoError(t, err)
	require.InDelta(t, -2.0, d, 1e-14)
	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	d, err = MustMatrix(t, [][]float64{{1, 2}, {3, 6}}).Det()
	require.NoError(t, err)
	require.Zero(t, d)

	require.NoError(t, m.SetIdentity())
	require.True(t, m.IsIdentity())

	rect := MustMatrix(t, [][]float64{{1, 2}})
	require.ErrorIs(t, rect.SetIdentity(), linalg.ErrNonSquare)
	_, err = rect.Det()
	require.ErrorIs(t, err, linalg.ErrNonSquare)
	_, err = rect.Trace()
	require.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestMatrix_Solve(t *testing.T) {
	t.Parallel()
	m := MustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	x, err := m.Solve(expr.Slice[float64]{5, 6})
	require.NoError(t, err)
	require.InDelta(t, -4.0, x.AtVec(0), 1e-14)
	require.InDelta(t, 4.5, x.AtVec(1), 1e-14)

	// m is untouched by the solve.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = m.Solve(expr.Slice[float64]{1})
	require.ErrorIs(t, err, linalg.ErrExtentMismatch)
	_, err = MustMatrix(t, [][]float64{{1, 2}, {3, 6}}).Solve(expr.Slice[float64]{5, 6})
	require.ErrorIs(t, err, linalg.ErrSingular)
	_, err = MustMatrix(t, [][]float64{{1, 2}}).Solve(expr.Slice[float64]{1})
	require.ErrorIs(t, err, linalg.ErrNonSquare)

	// Identity returns b bit for bit.
	id, err := dense.Identity[float64](4)
	require.NoError(t, err)
	b := expr.Slice[float64]{0.1, -2.5e-7, 3e12, 1.0 / 3}
	x, err = id.Solve(b)
	require.NoError(t, err)
	require.Equal(t, []float64(b), x.RawData())
}

func TestMatrix_SolveMatrix(t *testing.T) {
	t.Parallel()
	a := DominantMatrix(t, 4, 3)
	b := RandMatrix(t, 4, 2, 4)

	x, err := a.SolveMatrix(b)
	require.NoError(t, err)
	ax, err := expr.Product[float64](a, x)
	require.NoError(t, err)
	CompareClose(t, b, dense.MatrixOf(ax), 0, 1e-13)

	_, err = a.SolveMatrix(RandMatrix(t, 3, 2, 5))
	require.ErrorIs(t, err, linalg.ErrExtentMismatch)
}
