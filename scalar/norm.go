// SPDX-License-Identifier: MIT

package scalar

import "math"

// Norm2 returns the Euclidean norm of x without intermediate overflow or
// underflow: the running sum of squares is kept relative to the largest
// magnitude seen so far. NaN in x yields NaN.
// Complexity: O(n), computed in float64 and rounded once to T.
func Norm2[T Float](x []T) T {
	var scale, ssq float64
	for _, v := range x {
		if v == 0 {
			continue
		}
		av := math.Abs(float64(v))
		if scale < av {
			r := scale / av
			ssq = 1 + ssq*r*r
			scale = av
		} else {
			r := av / scale
			ssq += r * r
		}
	}

	return T(scale * math.Sqrt(ssq))
}
