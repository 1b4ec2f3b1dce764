package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algokit/catalog"
)

// summary is the rendered form of a catalog.Problem.
type summary struct {
	Slug       string             `yaml:"slug"`
	Title      string             `yaml:"title"`
	Category   catalog.Category   `yaml:"category"`
	Difficulty catalog.Difficulty `yaml:"difficulty"`
	Approaches []string           `yaml:"approaches,omitempty"`
	Time       string             `yaml:"time,omitempty"`
	Space      string             `yaml:"space,omitempty"`
	Cases      int                `yaml:"cases"`
}

func summarize(p catalog.Problem) summary {
	return summary{
		Slug:       p.Slug,
		Title:      p.Title,
		Category:   p.Category,
		Difficulty: p.Difficulty,
		Approaches: p.Approaches,
		Time:       p.Time,
		Space:      p.Space,
		Cases:      len(p.Cases),
	}
}

type listCommand struct {
	Category string `long:"category" short:"c" description:"Only list problems of this category"`
}

func (c *listCommand) Execute(_ []string) error {
	problems := registry.All()
	if c.Category != "" {
		cat := catalog.Category(c.Category)
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", c.Category)
		}
		problems = registry.ByCategory(cat)
	}
	log.WithFields(logrus.Fields{"category": c.Category, "count": len(problems)}).Debug("listing problems")

	rows := make([]summary, len(problems))
	for i, p := range problems {
		rows[i] = summarize(p)
	}

	return emit(stdout, rows, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tCATEGORY\tDIFFICULTY\tTITLE")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Slug, r.Category, r.Difficulty, r.Title)
		}
		return tw.Flush()
	})
}

type showCommand struct {
	Args struct {
		Slug string `positional-arg-name:"slug"`
	} `positional-args:"yes" required:"yes"`
}

func (c *showCommand) Execute(_ []string) error {
	p, err := registry.Lookup(c.Args.Slug)
	if err != nil {
		return err
	}
	s := summarize(p)

	return emit(stdout, s, func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %s\n", s.Slug, s.Title)
		fmt.Fprintf(w, "category:   %s\n", s.Category)
		fmt.Fprintf(w, "difficulty: %s\n", s.Difficulty)
		fmt.Fprintf(w, "time:       %s\n", s.Time)
		fmt.Fprintf(w, "space:      %s\n", s.Space)
		fmt.Fprintf(w, "cases:      %d\n", s.Cases)
		if len(s.Approaches) > 0 {
			fmt.Fprintln(w, "approaches:")
			for _, a := range s.Approaches {
				fmt.Fprintf(w, "  - %s\n", a)
			}
		}
		return nil
	})
}

type runCommand struct {
	All  bool `long:"all" short:"a" description:"Verify every problem"`
	Args struct {
		Slugs []string `positional-arg-name:"slug"`
	} `positional-args:"yes"`
}

func (c *runCommand) selection() ([]catalog.Problem, error) {
	switch {
	case c.All && len(c.Args.Slugs) > 0:
		return nil, errors.New("--all does not take slugs")
	case c.All:
		return registry.All(), nil
	case len(c.Args.Slugs) == 0:
		return nil, errors.New("name at least one slug or pass --all")
	}
	problems := make([]catalog.Problem, 0, len(c.Args.Slugs))
	for _, slug := range c.Args.Slugs {
		p, err := registry.Lookup(slug)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, nil
}

func (c *runCommand) Execute(_ []string) error {
	problems, err := c.selection()
	if err != nil {
		return err
	}
	reports := catalog.VerifyAll(problems)

	failed, cases := 0, 0
	for _, rep := range reports {
		cases += len(rep.Cases)
		if rep.Passed() {
			continue
		}
		failed++
		for _, f := range rep.Failures() {
			entry := log.WithFields(logrus.Fields{"slug": rep.Slug, "case": f.Name})
			if f.Panic != "" {
				entry = entry.WithField("panic", f.Panic)
			}
			entry.Error("case failed")
		}
	}
	log.WithFields(logrus.Fields{"problems": len(reports), "cases": cases, "failed": failed}).Info("verification finished")

	err = emit(stdout, reports, func(w io.Writer) error {
		for _, rep := range reports {
			writeReport(w, rep)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d problems", errCasesFailed, failed, len(reports))
	}

	return nil
}

func writeReport(w io.Writer, rep catalog.Report) {
	if rep.Passed() {
		fmt.Fprintf(w, "PASS %s (%d cases)\n", rep.Slug, len(rep.Cases))
		return
	}
	fmt.Fprintf(w, "FAIL %s (%d of %d cases)\n", rep.Slug, len(rep.Failures()), len(rep.Cases))
	for _, f := range rep.Failures() {
		fmt.Fprintf(w, "  %s:\n", f.Name)
		detail := f.Diff
		if f.Panic != "" {
			detail = "panic: " + f.Panic
		}
		for _, line := range strings.Split(strings.TrimRight(detail, "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
