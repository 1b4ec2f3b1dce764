package ds_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/ds"
)

func ExampleFormatTree() {
	root := ds.NewTree(4, 2, 7, 1, 3)
	fmt.Println(ds.FormatTree(root))
	// Output:
	// 4
	// ├── 2
	// │   ├── 1
	// │   └── 3
	// └── 7
}

func ExampleNewList() {
	fmt.Println(ds.NewList(1, 2, 3))
	// Output: 1 -> 2 -> 3
}
