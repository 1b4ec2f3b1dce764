package catalog

import (
	"github.com/katalvlaran/algokit/dp"
)

func dpProblems() []Problem {
	return []Problem{
		{
			Slug: "climbing-stairs", Title: "Climbing Stairs",
			Category: DP, Difficulty: Easy,
			Approaches: []string{"rolling pair (default)", "bottom-up table", "memoised recursion"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("n=5", 8, func() any { return result(dp.ClimbStairs(5)) }),
				eq("table n=10", 89, func() any { return result(dp.ClimbStairsTable(10)) }),
				eq("memo n=45", 1836311903, func() any { return result(dp.ClimbStairsMemo(45)) }),
				eq("negative", dp.ErrNegativeInput, func() any { return result(dp.ClimbStairs(-1)) }),
			},
		},
		{
			Slug: "unique-paths", Title: "Unique Paths",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"single-row table"},
			Time:       "O(m·n)", Space: "O(n)",
			Cases: []Case{
				eq("3x7", 28, func() any { return result(dp.UniquePaths(3, 7)) }),
				eq("3x2", 3, func() any { return result(dp.UniquePaths(3, 2)) }),
			},
		},
		{
			Slug: "house-robber", Title: "House Robber",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"rolling take/skip"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("1 2 3 1", 4, func() any { return dp.Rob([]int{1, 2, 3, 1}) }),
				eq("2 7 9 3 1", 12, func() any { return dp.Rob([]int{2, 7, 9, 3, 1}) }),
			},
		},
		{
			Slug: "maximum-subarray", Title: "Maximum Subarray",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"Kadane"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("mixed", 6, func() any { return dp.MaxSubArray([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}) }),
				eq("all negative", -1, func() any { return dp.MaxSubArray([]int{-3, -1, -2}) }),
			},
		},
		{
			Slug: "coin-change", Title: "Coin Change",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"unbounded knapsack table"},
			Time:       "O(amount·coins)", Space: "O(amount)",
			Cases: []Case{
				eq("11", 3, func() any { return dp.CoinChange([]int{1, 2, 5}, 11) }),
				eq("impossible", -1, func() any { return dp.CoinChange([]int{2}, 3) }),
			},
		},
		{
			Slug: "longest-increasing-subsequence", Title: "Longest Increasing Subsequence",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"patience tails with lower bound (default)", "quadratic table"},
			Time:       "O(n log n)", Space: "O(n)",
			Cases: []Case{
				eq("classic", 4, func() any { return dp.LengthOfLIS([]int{10, 9, 2, 5, 3, 7, 101, 18}) }),
				eq("quadratic", 4, func() any { return dp.LengthOfLISQuadratic([]int{0, 1, 0, 3, 2, 3}) }),
			},
		},
		{
			Slug: "word-break", Title: "Word Break",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"prefix reachability table"},
			Time:       "O(n²)", Space: "O(n)",
			Cases: []Case{
				eq("leetcode", true, func() any { return dp.WordBreak("leetcode", []string{"leet", "code"}) }),
				eq("catsandog", false, func() any {
					return dp.WordBreak("catsandog", []string{"cats", "dog", "sand", "and", "cat"})
				}),
			},
		},
		{
			Slug: "partition-equal-subset-sum", Title: "Partition Equal Subset Sum",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"0/1 knapsack over half the sum"},
			Time:       "O(n·sum)", Space: "O(sum)",
			Cases: []Case{
				eq("splittable", true, func() any { return dp.CanPartition([]int{1, 5, 11, 5}) }),
				eq("odd total", false, func() any { return dp.CanPartition([]int{1, 2, 3, 5}) }),
			},
		},
		{
			Slug: "edit-distance", Title: "Edit Distance",
			Category: DP, Difficulty: Hard,
			Approaches: []string{"full matrix with edit script", "two rolling rows"},
			Time:       "O(n·m)", Space: "O(n·m) or O(m)",
			Cases: []Case{
				eq("horse ros", 3, func() any {
					d, _, err := dp.EditDistance("horse", "ros", dp.DefaultEditOptions())
					return result(d, err)
				}),
				eq("intention execution", 5, func() any {
					opts := dp.DefaultEditOptions()
					opts.MemoryMode = dp.TwoRows
					d, _, err := dp.EditDistance("intention", "execution", opts)
					return result(d, err)
				}),
				eq("script needs matrix", dp.ErrScriptNeedsMatrix, func() any {
					opts := dp.DefaultEditOptions()
					opts.MemoryMode = dp.TwoRows
					opts.ReturnScript = true
					_, _, err := dp.EditDistance("a", "b", opts)
					return err
				}),
			},
		},
		{
			Slug: "longest-common-subsequence", Title: "Longest Common Subsequence",
			Category: DP, Difficulty: Medium,
			Approaches: []string{"two rolling rows"},
			Time:       "O(n·m)", Space: "O(m)",
			Cases: []Case{
				eq("abcde ace", 3, func() any { return dp.LongestCommonSubsequence("abcde", "ace") }),
				eq("disjoint", 0, func() any { return dp.LongestCommonSubsequence("abc", "def") }),
			},
		},
	}
}
