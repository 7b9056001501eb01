// SPDX-License-Identifier: MIT

// Package interop bridges the expression and dense types of this module to
// gonum.org/v1/gonum/mat.
//
// What it provides:
//   - View: a zero-copy mat.Matrix over any expr.Matrix (elements are read
//     through At on demand, converted to float64).
//   - ToGonum / ToGonumVec: materialize into *mat.Dense / *mat.VecDense.
//   - FromGonum / FromGonumVec: copy gonum values into dense containers.
//   - Cond: the 2-norm condition number, computed by gonum's SVD.
//   - SolveGonum: an independent LU solve through gonum, useful as an oracle
//     next to package solve.
//
// gonum cannot represent empty matrices; the constructors here report
// linalg.ErrBadShape instead of panicking the way mat.NewDense does.
package interop
