// SPDX-License-Identifier: MIT

package plotmat

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/expr"
	"github.com/katalvlaran/linalg/scalar"
)

// heatColors is the palette resolution of HeatMap.
const heatColors = 64

// grid adapts a matrix to plotter.GridXYZ. gonum indexes (column, row) with
// rows growing upward, so rows are flipped to keep row 0 on top. The y axis
// therefore counts rows from the bottom.
type grid[T scalar.Float] struct {
	m    expr.Matrix[T]
	rows int
	cols int
}

var _ plotter.GridXYZ = grid[float64]{}

func (g grid[T]) Dims() (c, r int)   { return g.cols, g.rows }
func (g grid[T]) Z(c, r int) float64 { return float64(g.m.At(g.rows-1-r, c)) }
func (g grid[T]) X(c int) float64    { return float64(c) }
func (g grid[T]) Y(r int) float64    { return float64(r) }

// HeatMap returns a plot of m as a heat map. Elements are read once per
// render through At. NaN elements take the map's NaN color and infinities
// fall outside the color range, so neither affects the scale.
// Errors: linalg.ErrBadShape when m has a zero extent.
func HeatMap[T scalar.Float](m expr.Matrix[T], title string) (*plot.Plot, error) {
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("plotmat.HeatMap: shape %dx%d: %w", r, c, linalg.ErrBadShape)
	}
	lo, hi := finiteRange(m)

	h := plotter.NewHeatMap(grid[T]{m: m, rows: r, cols: c}, palette.Heat(heatColors, 1))
	h.Min, h.Max = lo, hi

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(h)

	return p, nil
}

// finiteRange returns the color range over the finite elements of m, widened
// to a unit interval when all of them are equal (or none is finite).
func finiteRange[T scalar.Float](m expr.Matrix[T]) (lo, hi float64) {
	r, c := m.Dims()
	lo, hi = math.Inf(1), math.Inf(-1)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := float64(m.At(i, j))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	switch {
	case lo > hi:
		return 0, 1
	case lo == hi:
		return lo - 0.5, hi + 0.5
	}

	return lo, hi
}
