// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the container tests.
//   - Keep all data finite so tolerance checks stay meaningful.

package dense_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dense"
	"github.com/stretchr/testify/require"
)

// MustMatrix builds a *dense.Matrix from nested rows or fails the test.
func MustMatrix(t testing.TB, rows [][]float64) *dense.Matrix[float64] {
	t.Helper()
	m, err := dense.MatrixFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) through the checked accessor or fails the test.
func MustAt(t testing.TB, m *dense.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.AtChecked(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want exactly, including shape.
func CompareExact(t testing.TB, want [][]float64, m *dense.Matrix[float64]) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, len(want), r, "rows")
	for i := range want {
		require.Equal(t, len(want[i]), c, "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "at (%d,%d)", i, j)
		}
	}
}

// CompareClose asserts AllClose(m, want) with the given tolerances.
func CompareClose(t testing.TB, want, m *dense.Matrix[float64], rtol, atol float64) {
	t.Helper()
	ok, err := dense.AllClose[float64](m, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v want\n%v", m, want)
}

// RandMatrix returns an r×c matrix of deterministic U(-1,1) values.
func RandMatrix(t testing.TB, r, c int, seed int64) *dense.Matrix[float64] {
	t.Helper()
	m, err := dense.NewMatrix[float64](r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}

	return m
}

// DominantMatrix returns a random strictly diagonally dominant n×n matrix.
func DominantMatrix(t testing.TB, n int, seed int64) *dense.Matrix[float64] {
	t.Helper()
	m := RandMatrix(t, n, n, seed)
	for i := 0; i < n; i++ {
		m.Set(i, i, float64(n)+1)
	}

	return m
}
