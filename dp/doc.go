// Package dp solves dynamic-programming exercises: counting paths, optimal
// sub-structure over prefixes, and string alignment.
//
// 🚀 What:
//
//   - ClimbStairs in three approaches: memoized recursion, tabulation and
//     two rolling variables.
//   - Rob, CoinChange, UniquePaths, MaxSubArray (Kadane), CanPartition.
//   - LengthOfLIS: O(n log n) patience sorting and the O(n²) table.
//   - EditDistance: Levenshtein distance with selectable memory mode and an
//     optional edit script; LongestCommonSubsequence; WordBreak.
//
// ⚙️ EditDistance options:
//
//	opts := dp.DefaultEditOptions()
//	opts.ReturnScript = true // requires MemoryMode = FullMatrix
//	dist, script, err := dp.EditDistance("horse", "ros", opts)
//
// Memory modes:
//
//   - FullMatrix: (n+1)×(m+1) table, supports script recovery. O(n·m).
//   - TwoRows:    previous and current row only. O(m). Distance only.
//
// Errors:
//
//   - ErrScriptNeedsMatrix: ReturnScript with MemoryMode != FullMatrix.
//   - ErrNegativeCost:      any configured operation cost is negative.
//   - ErrNegativeInput:     negative step count or grid dimension.
package dp
