// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"
)

// Float is the element type constraint used across linalg.
type Float interface {
	~float32 | ~float64
}

// Machine epsilons for the two supported widths.
const (
	Epsilon32 = 1.0 / (1 << 23) // 2^-23, spacing of float32 values at 1.0
	Epsilon64 = 1.0 / (1 << 52) // 2^-52, spacing of float64 values at 1.0
)

// Zero returns the additive identity of T.
func Zero[T Float]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Float]() T { return 1 }

// Is32 reports whether T is backed by a 32-bit float.
// Complexity: O(1); resolved per instantiation.
func Is32[T Float]() bool {
	var z T

	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T (2^-23 for float32-based types,
// 2^-52 for float64-based types).
func Epsilon[T Float]() T {
	if Is32[T]() {
		return Epsilon32
	}

	return Epsilon64
}

// Abs returns |x|. Abs(-0) is +0; NaN stays NaN.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x computed in float64 and narrowed to T.
// Narrowing a correctly rounded float64 root to float32 is correctly rounded
// for float32 as well.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sign returns -1, 0 or +1 according to the sign of x. NaN is returned as is.
func Sign[T Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // ±0 or NaN
	}
}

// Max returns the larger of a and b (NaN propagates, as for the builtin).
func Max[T Float](a, b T) T { return max(a, b) }

// Min returns the smaller of a and b (NaN propagates, as for the builtin).
func Min[T Float](a, b T) T { return min(a, b) }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
