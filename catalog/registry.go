package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidProblem indicates a Problem missing required fields.
	ErrInvalidProblem = errors.New("catalog: invalid problem")

	// ErrDuplicateSlug indicates a slug registered twice.
	ErrDuplicateSlug = errors.New("catalog: duplicate slug")

	// ErrUnknownProblem indicates a slug that is not registered.
	ErrUnknownProblem = errors.New("catalog: unknown problem")
)

// Registry indexes problems by slug. The zero value is not usable; call
// NewRegistry. A Registry is not safe for concurrent Register calls.
type Registry struct {
	problems map[string]Problem
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{problems: make(map[string]Problem)}
}

// Register validates p and adds it.
func (r *Registry) Register(p Problem) error {
	if err := p.validate(); err != nil {
		return err
	}
	if _, ok := r.problems[p.Slug]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
	}
	r.problems[p.Slug] = p

	return nil
}

// Lookup returns the problem registered under slug.
func (r *Registry) Lookup(slug string) (Problem, error) {
	p, ok := r.problems[slug]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, slug)
	}

	return p, nil
}

// Len returns the number of registered problems.
func (r *Registry) Len() int { return len(r.problems) }

// All returns every problem ordered by category, then slug.
func (r *Registry) All() []Problem {
	out := make([]Problem, 0, len(r.problems))
	for _, p := range r.problems {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Slug < out[j].Slug
	})

	return out
}

// ByCategory returns the problems of c ordered by slug.
func (r *Registry) ByCategory(c Category) []Problem {
	var out []Problem
	for _, p := range r.All() {
		if p.Category == c {
			out = append(out, p)
		}
	}

	return out
}
