package arrays_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/arrays"
)

// ExampleProductExceptSelf shows the prefix/suffix product trick.
func ExampleProductExceptSelf() {
	fmt.Println(arrays.ProductExceptSelf([]int{1, 2, 3, 4}))
	// Output: [24 12 8 6]
}

// ExampleMergeIntervals merges overlapping booking slots.
func ExampleMergeIntervals() {
	fmt.Println(arrays.MergeIntervals([][2]int{{1, 3}, {2, 6}, {8, 10}, {15, 18}}))
	// Output: [[1 6] [8 10] [15 18]]
}
