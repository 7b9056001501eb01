// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set shared by every subpackage.
// All algorithms MUST return these sentinels (optionally wrapped with
// fmt.Errorf("op: %w", ErrX)) and tests MUST check them via errors.Is.
// No algorithm panics on user-triggered error conditions; the only panics are
// the unchecked fast accessors (runtime bounds checks) and option
// constructors given nonsensical values (programmer error).

package linalg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." so logs can be grepped across
// packages. Subpackages add their operation tag in front ("Invert: linalg:
// matrix is singular"); callers still match with errors.Is.

var (
	// ErrExtentMismatch indicates incompatible operand extents: vector lengths,
	// matrix rows/columns, or a matrix-product inner dimension. It is always
	// detected before any element is read or written.
	ErrExtentMismatch = errors.New("linalg: extent mismatch")

	// ErrNonSquare signals that a square-only operation (Invert, SetIdentity,
	// dense solver entry points) received a non-square matrix.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a required pivot (or determinant) is exactly
	// zero and no usable result can be produced.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrOutOfRange is returned by the bounds-checked accessors
	// (AtChecked/SetChecked). Fast accessors do not return it.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrBadShape is returned when a requested extent is negative or when raw
	// data does not match the declared shape.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrEmpty is returned by reductions (Min, Max) that have no defined value
	// for an empty vector.
	ErrEmpty = errors.New("linalg: empty vector")

	// ErrZeroVector is returned when an operation must divide by a vector's
	// norm (Normal, Project, Reject) and that norm is zero.
	ErrZeroVector = errors.New("linalg: zero-length vector")

	// ErrInvalidTolerance is returned by AllClose-style comparisons given a NaN
	// or infinite tolerance.
	ErrInvalidTolerance = errors.New("linalg: tolerance must be finite")

	// ErrNonFinite is returned when a replacement value or clipping bound is
	// NaN or infinite.
	ErrNonFinite = errors.New("linalg: value must be finite")
)
