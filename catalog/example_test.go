package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/catalog"
)

func ExampleVerify() {
	p, err := catalog.Default().Lookup("two-sum")
	if err != nil {
		fmt.Println(err)
		return
	}
	rep := catalog.Verify(p)
	fmt.Println(rep.Slug, rep.Difficulty, len(rep.Cases), rep.Passed())
	// Output: two-sum easy 2 true
}
