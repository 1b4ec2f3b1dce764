// Package catalog indexes every solution in the module as a Problem with
// metadata and runnable example cases, and verifies those cases.
//
// What:
//
//   - Problem: slug, title, category, difficulty, approaches, complexity and
//     the example Cases that exercise the solution.
//   - Registry: a slug-keyed index with deterministic listing order
//     (category, then slug).
//   - Default: a Registry holding every problem of the module.
//   - Verify: runs the cases of a Problem and reports each mismatch as a
//     go-cmp diff. A panicking case fails instead of aborting the run.
//
// Comparison treats nil and empty slices or maps as equal, floats within
// 1e-9 as equal, and errors as equal when errors.Is matches them.
//
// Errors:
//
//   - ErrInvalidProblem: Register with a malformed Problem.
//   - ErrDuplicateSlug: Register with a slug that is already taken.
//   - ErrUnknownProblem: Lookup of a slug that is not registered.
package catalog
