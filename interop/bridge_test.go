package interop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/dense"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/interop"
)

func mustMatrix(t *testing.T, rows [][]float64) *dense.Matrix[float64] {
	t.Helper()
	m, err := dense.MatrixFrom(rows)
	require.NoError(t, err)

	return m
}

func TestView_ReadsThroughExpression(t *testing.T) {
	t.Parallel()
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	v := interop.View[float64](expr.MatScale[float64](a, 2))

	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 12.0, v.At(1, 2))

	// The view is live: later writes to a are visible.
	a.Set(0, 0, 10)
	assert.Equal(t, 20.0, v.At(0, 0))

	tr := v.T()
	r, c = tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 8.0, tr.At(0, 1))
}

func TestView_UsableByGonum(t *testing.T) {
	t.Parallel()
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMatrix(t, [][]float64{{5, 6}, {7, 8}})

	var got mat.Dense
	got.Mul(interop.View[float64](a), interop.View[float64](b))
	want := mat.NewDense(2, 2, []float64{19, 22, 43, 50})
	assert.True(t, mat.Equal(want, &got))
}

func TestView_Float32(t *testing.T) {
	t.Parallel()
	m := expr.RowMajor[float32]{Rows: 1, Cols: 2, Data: []float32{0.5, -1.5}}
	v := interop.View[float32](m)
	assert.Equal(t, -1.5, v.At(0, 1))
}

func TestToGonum_RoundTrip(t *testing.T) {
	t.Parallel()
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := interop.ToGonum[float64](a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, g.RawMatrix().Data)

	// The copy is independent of the source.
	a.Set(0, 0, 9)
	assert.Equal(t, 1.0, g.At(0, 0))

	back := interop.FromGonum[float64](g)
	r, c := back.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, back.RawData())
}

func TestFromGonum_Transpose(t *testing.T) {
	t.Parallel()
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := interop.FromGonum[float32](g.T())
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, m.RawData())
}

func TestToGonumVec_RoundTrip(t *testing.T) {
	t.Parallel()
	v := dense.VectorFrom([]float64{3, -1, 2})
	g, err := interop.ToGonumVec[float64](v)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, -1.0, g.AtVec(1))

	back := interop.FromGonumVec[float64](g)
	assert.Equal(t, []float64{3, -1, 2}, back.RawData())
}

func TestToGonum_Empty(t *testing.T) {
	t.Parallel()
	empty, err := dense.NewMatrix[float64](0, 3)
	require.NoError(t, err)
	_, err = interop.ToGonum[float64](empty)
	require.ErrorIs(t, err, linalg.ErrBadShape)

	_, err = interop.ToGonumVec[float64](dense.VectorFrom([]float64{}))
	require.ErrorIs(t, err, linalg.ErrBadShape)
}
