package catalog

import "fmt"

// Default returns a fresh Registry holding every problem of the module.
func Default() *Registry {
	r := NewRegistry()
	groups := [][]Problem{
		arraysProblems(),
		backtrackingProblems(),
		dpProblems(),
		graphsProblems(),
		greedyProblems(),
		hashingProblems(),
		linkedListProblems(),
		numericProblems(),
		prefixSumProblems(),
		searchProblems(),
		slidingWindowProblems(),
		twoPointersProblems(),
	}
	for _, g := range groups {
		for _, p := range g {
			if err := r.Register(p); err != nil {
				panic(fmt.Sprintf("catalog: default registry: %v", err))
			}
		}
	}

	return r
}

// eq builds a case comparing the result of got against want.
func eq(name string, want any, got func() any) Case {
	return Case{Name: name, Run: func() (any, any) { return got(), want }}
}

// result folds a (value, error) pair into one comparable value: the error
// when it is non-nil, the value otherwise.
func result[T any](v T, err error) any {
	if err != nil {
		return err
	}

	return v
}
