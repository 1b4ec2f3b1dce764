package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/catalog"
)

func problem(slug string, c catalog.Category) catalog.Problem {
	return catalog.Problem{
		Slug:       slug,
		Title:      "Title of " + slug,
		Category:   c,
		Difficulty: catalog.Easy,
		Cases: []catalog.Case{{
			Name: "ok",
			Run:  func() (any, any) { return 1, 1 },
		}},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := catalog.NewRegistry()
	require.NoError(t, r.Register(problem("two-sum", catalog.Hashing)))
	assert.Equal(t, 1, r.Len())

	p, err := r.Lookup("two-sum")
	require.NoError(t, err)
	assert.Equal(t, "two-sum", p.Slug)

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, catalog.ErrUnknownProblem)

	err = r.Register(problem("two-sum", catalog.Arrays))
	assert.ErrorIs(t, err, catalog.ErrDuplicateSlug)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := catalog.NewRegistry()
	cases := map[string]func(*catalog.Problem){
		"bad slug":       func(p *catalog.Problem) { p.Slug = "Two Sum" },
		"empty slug":     func(p *catalog.Problem) { p.Slug = "" },
		"no title":       func(p *catalog.Problem) { p.Title = "" },
		"bad category":   func(p *catalog.Problem) { p.Category = "misc" },
		"bad difficulty": func(p *catalog.Problem) { p.Difficulty = "trivial" },
		"no cases":       func(p *catalog.Problem) { p.Cases = nil },
		"nil run":        func(p *catalog.Problem) { p.Cases[0].Run = nil },
	}
	for name, mutate := range cases {
		p := problem("valid-slug", catalog.Arrays)
		mutate(&p)
		assert.ErrorIs(t, r.Register(p), catalog.ErrInvalidProblem, name)
	}
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Ordering(t *testing.T) {
	r := catalog.NewRegistry()
	for _, p := range []catalog.Problem{
		problem("b-two", catalog.Greedy),
		problem("a-one", catalog.Greedy),
		problem("z-last", catalog.Arrays),
		problem("c-three", catalog.DP),
	} {
		require.NoError(t, r.Register(p))
	}

	var slugs []string
	for _, p := range r.All() {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"z-last", "c-three", "a-one", "b-two"}, slugs)

	greedy := r.ByCategory(catalog.Greedy)
	require.Len(t, greedy, 2)
	assert.Equal(t, "a-one", greedy[0].Slug)
	assert.Empty(t, r.ByCategory(catalog.Search))
}

func TestCategoriesAndDifficulty(t *testing.T) {
	for _, c := range catalog.Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, catalog.Category("ds").Valid())
	assert.True(t, catalog.Hard.Valid())
	assert.False(t, catalog.Difficulty("").Valid())
}
