// SPDX-License-Identifier: MIT

package scalar

import "math"

// Accumulator sums float64 terms with Neumaier compensation. Products added
// through AddProduct are split exactly with a fused multiply-add, so a dot
// product accumulated here behaves as if computed in roughly twice the
// working precision (Ogita–Rump–Oishi Dot2).
//
// The zero value is an empty sum, ready to use.
type Accumulator struct {
	sum  float64 // running (rounded) sum
	comp float64 // accumulated rounding error of sum
}

// Add adds x to the running sum.
// Complexity: O(1).
func (a *Accumulator) Add(x float64) {
	t := a.sum + x
	// Recover the low-order bits lost by the addition above.
	if math.Abs(a.sum) >= math.Abs(x) {
		a.comp += (a.sum - t) + x
	} else {
		a.comp += (x - t) + a.sum
	}
	a.sum = t
}

// AddProduct adds x*y to the running sum without losing the rounding error of
// the product: p = fl(x*y) and e = x*y - p (exact via FMA) are both added.
func (a *Accumulator) AddProduct(x, y float64) {
	p := x * y
	e := math.FMA(x, y, -p)
	a.Add(p)
	a.comp += e
}

// Value returns the compensated sum.
func (a *Accumulator) Value() float64 { return a.sum + a.comp }

// Reset empties the accumulator.
func (a *Accumulator) Reset() { a.sum, a.comp = 0, 0 }

// Dot returns Σ x[i]*y[i] over min(len(x), len(y)) terms, accumulated with an
// Accumulator and rounded once to T at the end.
// Complexity: O(n).
func Dot[T Float](x, y []T) T {
	n := min(len(x), len(y))
	var acc Accumulator
	for i := 0; i < n; i++ {
		acc.AddProduct(float64(x[i]), float64(y[i]))
	}

	return T(acc.Value())
}

// Sum returns Σ x[i] with compensated accumulation.
func Sum[T Float](x []T) T {
	var acc Accumulator
	for _, v := range x {
		acc.Add(float64(v))
	}

	return T(acc.Value())
}
