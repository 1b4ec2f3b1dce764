package prefixsum_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/prefixsum"
)

func ExampleNumArray() {
	a := prefixsum.NewNumArray([]int{-2, 0, 3, -5, 2, -1})
	s, _ := a.SumRange(2, 5)
	fmt.Println(s)
	// Output: -1
}

func ExampleSubarraySum() {
	fmt.Println(prefixsum.SubarraySum([]int{1, 1, 1}, 2))
	// Output: 2
}
