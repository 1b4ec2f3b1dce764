package graphs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/graphs"
)

// ExampleNumIslands counts the islands of the classic 4×5 map.
func ExampleNumIslands() {
	grid := [][]byte{
		[]byte("11000"),
		[]byte("11000"),
		[]byte("00100"),
		[]byte("00011"),
	}
	fmt.Println(graphs.NumIslands(grid))
	// Output: 3
}

// ExampleIslands lists every island cell as (row,col).
func ExampleIslands() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	m, _ := graphs.Islands(grid, graphs.DefaultGridOptions())
	for i, comp := range m.Components {
		fmt.Printf("island %d:", i)
		for _, idx := range comp {
			r, c := m.Cell(idx)
			fmt.Printf(" (%d,%d)", r, c)
		}
		fmt.Println()
	}
	// Output:
	// island 0: (0,1) (0,2) (1,1)
	// island 1: (0,4) (1,4) (1,3) (2,3) (2,2)
	// island 2: (2,0)
}

// ExampleValidTree detects the cycle 1-2-3 with union-find.
func ExampleValidTree() {
	ok, _ := graphs.ValidTree(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 3}, {1, 4}})
	fmt.Println(ok)
	// Output: false
}
