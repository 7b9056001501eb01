// SPDX-License-Identifier: MIT

package plotmat

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoHistory is returned by Residuals when nothing was recorded.
var ErrNoHistory = errors.New("plotmat: no residuals recorded")

// residualFloor replaces exact zero residuals on the log axis.
const residualFloor = 1e-300

// History collects refinement residuals per right-hand-side column. Its
// Trace method has the solve.TraceFunc signature:
//
//	var h plotmat.History
//	x, err := solve.Solve(a, n, b, solve.WithTrace(h.Trace))
//
// The zero value is ready to use. A History is not safe for concurrent use.
type History struct {
	cols map[int][]float64
}

// Trace records residual as refinement step `step` of column col. Step 0
// starts a new series for col.
func (h *History) Trace(col, step int, residual float64) {
	if h.cols == nil {
		h.cols = make(map[int][]float64)
	}
	if step == 0 {
		h.cols[col] = h.cols[col][:0]
	}
	h.cols[col] = append(h.cols[col], residual)
}

// Columns returns the recorded column indices in ascending order.
func (h *History) Columns() []int {
	out := make([]int, 0, len(h.cols))
	for c := range h.cols {
		out = append(out, c)
	}
	slices.Sort(out)

	return out
}

// Series returns a copy of the residuals recorded for col, step by step.
func (h *History) Series(col int) []float64 { return slices.Clone(h.cols[col]) }

// Reset drops everything recorded so far.
func (h *History) Reset() { clear(h.cols) }

// Residuals plots log10(residual) against the refinement step, one line with
// point markers per recorded column. Zero residuals are drawn at log10(1e-300).
// Errors: ErrNoHistory when h is empty.
func Residuals(h *History, title string) (*plot.Plot, error) {
	cols := h.Columns()
	if len(cols) == 0 {
		return nil, ErrNoHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "refinement step"
	p.Y.Label.Text = "log10 |Ax - b|"
	p.Legend.Top = true

	for i, c := range cols {
		series := h.cols[c]
		pts := make(plotter.XYs, len(series))
		for s, r := range series {
			pts[s].X = float64(s)
			pts[s].Y = math.Log10(math.Max(r, residualFloor))
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("plotmat.Residuals: column %d: %w", c, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(fmt.Sprintf("column %d", c), line, points)
	}

	return p, nil
}
