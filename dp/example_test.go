package dp_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/dp"
)

// ExampleClimbStairs counts the ways up a five-step staircase.
func ExampleClimbStairs() {
	ways, _ := dp.ClimbStairs(5)
	fmt.Println(ways)
	// Output: 8
}

// ExampleEditDistance prints the edit script turning "horse" into "ros".
func ExampleEditDistance() {
	opts := dp.DefaultEditOptions()
	opts.ReturnScript = true
	dist, script, _ := dp.EditDistance("horse", "ros", opts)
	fmt.Println("distance:", dist)
	for _, op := range script {
		fmt.Println(op.Kind)
	}
	// Output:
	// distance: 3
	// substitute
	// keep
	// delete
	// keep
	// delete
}
