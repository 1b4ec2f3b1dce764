package catalog

import (
	"fmt"
	"regexp"
)

// Difficulty grades a problem.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the known grades.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}

	return false
}

// Category groups problems by technique. The values match the package
// holding the solutions.
type Category string

const (
	Arrays        Category = "arrays"
	Backtracking  Category = "backtracking"
	DP            Category = "dp"
	Graphs        Category = "graphs"
	Greedy        Category = "greedy"
	Hashing       Category = "hashing"
	LinkedList    Category = "linkedlist"
	Numeric       Category = "numeric"
	PrefixSum     Category = "prefixsum"
	Search        Category = "search"
	SlidingWindow Category = "slidingwindow"
	TwoPointers   Category = "twopointers"
)

// Categories lists every category in listing order.
func Categories() []Category {
	return []Category{
		Arrays, Backtracking, DP, Graphs, Greedy, Hashing,
		LinkedList, Numeric, PrefixSum, Search, SlidingWindow, TwoPointers,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// Case is one runnable example. Run returns the value the solution
// produced and the value it should have produced.
type Case struct {
	Name string
	Run  func() (got, want any)
}

// Problem describes a solved exercise.
type Problem struct {
	Slug       string
	Title      string
	Category   Category
	Difficulty Difficulty
	Approaches []string
	Time       string
	Space      string
	Cases      []Case
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func (p Problem) validate() error {
	switch {
	case !slugPattern.MatchString(p.Slug):
		return fmt.Errorf("%w: slug %q", ErrInvalidProblem, p.Slug)
	case p.Title == "":
		return fmt.Errorf("%w: %s has no title", ErrInvalidProblem, p.Slug)
	case !p.Category.Valid():
		return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidProblem, p.Slug, p.Category)
	case !p.Difficulty.Valid():
		return fmt.Errorf("%w: %s has unknown difficulty %q", ErrInvalidProblem, p.Slug, p.Difficulty)
	case len(p.Cases) == 0:
		return fmt.Errorf("%w: %s has no cases", ErrInvalidProblem, p.Slug)
	}
	for i, c := range p.Cases {
		if c.Name == "" || c.Run == nil {
			return fmt.Errorf("%w: %s case %d is incomplete", ErrInvalidProblem, p.Slug, i)
		}
	}

	return nil
}
