// SPDX-License-Identifier: MIT
// Package solve_test contains deterministic fixtures for the solver tests.
//
// Purpose:
//   - Build reproducible well- and ill-conditioned systems.
//   - Measure residuals the same way the refinement step does.

package solve_test

import (
	"math/rand"

	"github.com/katalvlaran/linalg/scalar"
)

// hilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1), the classic
// ill-conditioned fixture (cond₂(H₈) ≈ 1.5e10).
func hilbert[T scalar.Float](n int) []T {
	a := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = 1 / T(i+j+1)
		}
	}

	return a
}

// dominant returns a random strictly diagonally dominant n×n matrix with
// U(-1,1) off-diagonal entries.
func dominant(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			a[i*n+j] = v
			if v < 0 {
				v = -v
			}
			sum += v
		}
		a[i*n+i] = sum + 1 + rng.Float64()
	}

	return a
}

// randVec returns n deterministic U(-1,1) values.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// residualNorm returns ‖A·x − b‖₂ with compensated accumulation.
func residualNorm[T scalar.Float](a []T, n int, b, x []T) float64 {
	r := make([]T, n)
	var acc scalar.Accumulator
	for i := 0; i < n; i++ {
		acc.Reset()
		for j := 0; j < n; j++ {
			acc.AddProduct(float64(a[i*n+j]), float64(x[j]))
		}
		acc.Add(-float64(b[i]))
		r[i] = T(acc.Value())
	}

	return float64(scalar.Norm2(r))
}

// matMul returns the n×n product a·b.
func matMul(a, b []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			for j := 0; j < n; j++ {
				out[i*n+j] += aik * b[k*n+j]
			}
		}
	}

	return out
}

// identity returns the n×n identity.
func identity(n int) []float64 {
	id := make([]float64, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}

	return id
}

// clone copies s.
func clone[T any](s []T) []T { return append([]T(nil), s...) }
