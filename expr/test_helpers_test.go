// SPDX-License-Identifier: MIT
// Package expr_test contains shared fixtures for the expression tests.
//
// Purpose:
//   - Build small deterministic terminals without error plumbing in every test.
//   - Compare lazily evaluated nodes against plain [][]float64 expectations.

package expr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/expr"
	"github.com/stretchr/testify/require"
)

// opaque hides the concrete terminal type so EvalInto takes its generic path.
type opaque struct{ expr.MutableMatrix[float64] }

// opaqueVec is the vector counterpart of opaque.
type opaqueVec struct{ expr.MutableVector[float64] }

// MustRowMajor builds a RowMajor from nested rows or fails the test.
func MustRowMajor(t testing.TB, rows [][]float64) expr.RowMajor[float64] {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := expr.NewRowMajor[float64](r, c)
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, c, "ragged fixture row %d", i)
		copy(m.RowSlice(i), row)
	}

	return m
}

// RandRowMajor returns an r×c terminal with deterministic U(-1,1) values.
func RandRowMajor(t testing.TB, r, c int, seed int64) expr.RowMajor[float64] {
	t.Helper()
	m, err := expr.NewRowMajor[float64](r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for k := range m.Data {
		m.Data[k] = rng.Float64()*2 - 1
	}

	return m
}

// CompareExact asserts m equals want element by element, including shape.
func CompareExact(t *testing.T, want [][]float64, m expr.Matrix[float64]) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, len(want), r, "rows")
	var i, j int
	for i = 0; i < r; i++ {
		require.Equal(t, len(want[i]), c, "cols")
		for j = 0; j < c; j++ {
			require.Equal(t, want[i][j], m.At(i, j), "at (%d,%d)", i, j)
		}
	}
}

// VecValues reads every element of v.
func VecValues(v expr.Vector[float64]) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}
