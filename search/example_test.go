package search_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/search"
)

func ExampleSearchRange() {
	fmt.Println(search.SearchRange([]int{5, 7, 7, 8, 8, 10}, 8))
	// Output: [3 4]
}

func ExampleFirstTrue() {
	// smallest n with n² ≥ 50
	fmt.Println(search.FirstTrue(0, 50, func(n int) bool { return n*n >= 50 }))
	// Output: 8
}
