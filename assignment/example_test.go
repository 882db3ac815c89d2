package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/demedist/assignment"
	"github.com/katalvlaran/demedist/matrix"
)

// ExampleSolve matches three workers to three jobs at minimum total cost.
func ExampleSolve() {
	cost, _ := matrix.FromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	res, err := assignment.Solve(cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("rows→cols:", res.RowToCol)
	fmt.Println("cost:", res.Cost)

	// Output:
	// rows→cols: [1 0 2]
	// cost: 5
}
