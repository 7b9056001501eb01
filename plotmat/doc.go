// SPDX-License-Identifier: MIT

// Package plotmat renders matrices and refinement traces with gonum/plot.
//
//   - HeatMap draws any expr.Matrix as a colored grid, row 0 at the top.
//   - History records solve.WithTrace callbacks; Residuals plots them as
//     log10(residual) per refinement step, one line per right-hand side.
//   - Save writes a plot to disk; the format follows the file extension
//     (.png, .svg, .pdf, .eps, .jpg, .tif).
package plotmat
