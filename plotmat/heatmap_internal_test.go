package plotmat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/expr"
)

func TestGrid_RowZeroOnTop(t *testing.T) {
	t.Parallel()
	m := expr.RowMajor[float64]{Rows: 2, Cols: 3, Data: []float64{1, 2, 3, 4, 5, 6}}
	g := grid[float64]{m: m, rows: 2, cols: 3}

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	// Grid row 1 is the top of the plot and carries matrix row 0.
	assert.Equal(t, 1.0, g.Z(0, 1))
	assert.Equal(t, 6.0, g.Z(2, 0))
	assert.Less(t, g.Y(0), g.Y(1))
	assert.Equal(t, 2.0, g.X(2))
}

func TestFiniteRange(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		data   []float64
		lo, hi float64
	}{
		{"spread", []float64{-2, 0, 3, 1}, -2, 3},
		{"constant", []float64{7, 7, 7, 7}, 6.5, 7.5},
		{"skips non-finite", []float64{math.NaN(), 1, math.Inf(1), 4}, 1, 4},
		{"nothing finite", []float64{math.NaN(), math.Inf(-1), math.NaN(), math.NaN()}, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := expr.RowMajor[float64]{Rows: 2, Cols: 2, Data: tc.data}
			lo, hi := finiteRange[float64](m)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}
