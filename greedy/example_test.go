package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/greedy"
)

func ExamplePartitionLabels() {
	fmt.Println(greedy.PartitionLabels("ababcbacadefegdehijhklij"))
	// Output: [9 7 8]
}
