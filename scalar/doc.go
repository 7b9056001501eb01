// Package scalar defines the numeric contract every linalg container, node
// and solver is written against.
//
// The Float constraint admits float32, float64 and any named type built on
// them. Solvers and norms rely on the trait table below being total and free
// of side effects:
//
//   - Zero, One: additive and multiplicative identities.
//   - Epsilon: machine epsilon of the concrete width (2^-23 or 2^-52).
//   - Abs, Sqrt, Sign, Max, Min: magnitude, root, sign and ordering.
//
// Complex types are intentionally absent: pivot selection needs a total order
// on magnitudes and the norms return values of the element type.
//
// Accumulator provides extended-precision summation (Neumaier compensation
// with exact FMA product splitting). The dense solver uses it for residuals
// during iterative refinement.
package scalar
