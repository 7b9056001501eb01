package dense_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/dense"
	"github.com/katalvlaran/linalg/expr"
)

// ExampleVector_Assign shows an assignment whose right-hand side reads the
// destination.
func ExampleVector_Assign() {
	a := dense.VectorFrom([]float64{1, 2, 3})
	c := dense.VectorFrom([]float64{10, 20, 30})

	e, _ := expr.Add[float64](a, expr.Scale[float64](c, 2))
	if err := c.Assign(e); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output:
	// [21, 42, 63]
}

// ExampleMatrix_Solve solves the classic 2×2 system.
func ExampleMatrix_Solve() {
	a, _ := dense.MatrixFrom([][]float64{{1, 2}, {3, 4}})
	x, err := a.Solve(expr.Slice[float64]{5, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", x.AtVec(0), x.AtVec(1))
	// Output:
	// -4.000 4.500
}

// ExampleMatrix_Invert inverts in place and prints the result.
func ExampleMatrix_Invert() {
	m, _ := dense.MatrixFrom([][]float64{{2, 0}, {0, 4}})
	if err := m.Invert(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleMatrix_Row writes through a row view.
func ExampleMatrix_Row() {
	m, _ := dense.NewMatrix[float64](2, 3)
	row, _ := m.Row(1)
	_ = row.Assign(expr.Fill(3, 7.0))
	fmt.Print(m)
	// Output:
	// [0, 0, 0]
	// [7, 7, 7]
}
