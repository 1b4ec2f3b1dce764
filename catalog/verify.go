package catalog

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// floatTolerance is the absolute margin for float results.
const floatTolerance = 1e-9

var compareOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.EquateApprox(0, floatTolerance),
	cmpopts.EquateErrors(),
}

// CaseResult is the outcome of one Case.
type CaseResult struct {
	Name   string `yaml:"name"`
	Passed bool   `yaml:"passed"`
	// Diff is the go-cmp diff (-want +got) of a failed comparison.
	Diff string `yaml:"diff,omitempty"`
	// Panic holds the recovered value of a panicking case.
	Panic string `yaml:"panic,omitempty"`
}

// Report collects the case outcomes of one Problem.
type Report struct {
	Slug       string       `yaml:"slug"`
	Category   Category     `yaml:"category"`
	Difficulty Difficulty   `yaml:"difficulty"`
	Cases      []CaseResult `yaml:"cases"`
}

// Passed reports whether every case passed.
func (r Report) Passed() bool {
	return len(r.Failures()) == 0
}

// Failures returns the failed cases in run order.
func (r Report) Failures() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if !c.Passed {
			out = append(out, c)
		}
	}

	return out
}

// Verify runs every case of p in order.
func Verify(p Problem) Report {
	rep := Report{
		Slug:       p.Slug,
		Category:   p.Category,
		Difficulty: p.Difficulty,
		Cases:      make([]CaseResult, 0, len(p.Cases)),
	}
	for _, c := range p.Cases {
		rep.Cases = append(rep.Cases, runCase(c))
	}

	return rep
}

// VerifyAll verifies ps in order.
func VerifyAll(ps []Problem) []Report {
	out := make([]Report, len(ps))
	for i, p := range ps {
		out[i] = Verify(p)
	}

	return out
}

func runCase(c Case) (res CaseResult) {
	res.Name = c.Name
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Panic = fmt.Sprint(r)
		}
	}()

	got, want := c.Run()
	if cmp.Equal(want, got, compareOpts...) {
		res.Passed = true
		return res
	}
	res.Diff = cmp.Diff(want, got, compareOpts...)

	return res
}
