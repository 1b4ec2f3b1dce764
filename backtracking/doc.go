// Package backtracking enumerates combinatorial objects by depth-first
// choose / explore / un-choose search.
//
// What:
//
//   - Subsets, Permutations, CombinationSum: built on templates.Backtrack.
//   - GenerateParentheses, LetterCombinations: string builders with pruning.
//   - SolveNQueens, TotalNQueens: column and diagonal occupancy sets.
//   - Exist: word search over a letter grid.
//
// Complexity (n = input size):
//
//   - Subsets:          O(n·2ⁿ)
//   - Permutations:     O(n·n!)
//   - GenerateParentheses: O(4ⁿ/√n) (Catalan number of results)
//   - SolveNQueens:     O(n!)
//   - Exist:            O(R·C·3ᴸ) for word length L
//
// Output order is the depth-first discovery order and is stable across runs.
package backtracking
