package slidingwindow_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/slidingwindow"
)

func ExampleMaxSlidingWindow() {
	maxes, err := slidingwindow.MaxSlidingWindow([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(maxes)
	// Output: [3 3 5 5 6 7]
}

func ExampleMinWindow() {
	fmt.Println(slidingwindow.MinWindow("ADOBECODEBANC", "ABC"))
	// Output: BANC
}
