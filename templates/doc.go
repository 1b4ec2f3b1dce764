// Package templates provides generic, fill-in-the-blank skeletons for the
// recurring shapes of algorithmic exercises. The solution packages plug their
// problem-specific pieces into these drivers instead of re-writing the loops.
//
// What:
//
//   - Memo:      top-down memoization of a recursive function.
//   - Backtrack: choose / explore / un-choose enumeration with pruning.
//   - GridBFS:   multi-source breadth-first search over a rectangular grid.
//   - Window:    variable-size sliding window (expand right, shrink left).
//
// None of the drivers allocate beyond what the caller's callbacks require,
// and none keep state between calls.
package templates
