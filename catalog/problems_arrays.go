package catalog

import (
	"github.com/katalvlaran/algokit/arrays"
	"github.com/katalvlaran/algokit/backtracking"
)

func arraysProblems() []Problem {
	return []Problem{
		{
			Slug: "product-except-self", Title: "Product of Array Except Self",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"prefix and suffix products"},
			Time:       "O(n)", Space: "O(1) extra",
			Cases: []Case{
				eq("1 2 3 4", []int{24, 12, 8, 6}, func() any { return arrays.ProductExceptSelf([]int{1, 2, 3, 4}) }),
				eq("with zero", []int{0, 0, 9, 0, 0}, func() any { return arrays.ProductExceptSelf([]int{-1, 1, 0, -3, 3}) }),
			},
		},
		{
			Slug: "plus-one", Title: "Plus One",
			Category: Arrays, Difficulty: Easy,
			Approaches: []string{"carry from the last digit"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("no carry out", []int{1, 2, 4}, func() any { return arrays.PlusOne([]int{1, 2, 3}) }),
				eq("all nines", []int{1, 0, 0, 0}, func() any { return arrays.PlusOne([]int{9, 9, 9}) }),
			},
		},
		{
			Slug: "rotate-array", Title: "Rotate Array",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"triple reverse (default)", "copy", "cyclic replacements"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("k=3", []int{5, 6, 7, 1, 2, 3, 4}, func() any {
					nums := []int{1, 2, 3, 4, 5, 6, 7}
					arrays.Rotate(nums, 3)
					return nums
				}),
				eq("copy k>n", []int{2, 1}, func() any {
					nums := []int{1, 2}
					arrays.RotateCopy(nums, 5)
					return nums
				}),
				eq("cyclic", []int{5, 6, 1, 2, 3, 4}, func() any {
					nums := []int{1, 2, 3, 4, 5, 6}
					arrays.RotateCyclic(nums, 2)
					return nums
				}),
			},
		},
		{
			Slug: "merge-intervals", Title: "Merge Intervals",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"sort by start, sweep"},
			Time:       "O(n log n)", Space: "O(n)",
			Cases: []Case{
				eq("overlapping", [][2]int{{1, 6}, {8, 10}, {15, 18}}, func() any {
					return arrays.MergeIntervals([][2]int{{1, 3}, {2, 6}, {8, 10}, {15, 18}})
				}),
				eq("touching", [][2]int{{1, 5}}, func() any { return arrays.MergeIntervals([][2]int{{1, 4}, {4, 5}}) }),
			},
		},
		{
			Slug: "insert-interval", Title: "Insert Interval",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"three-phase sweep"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("merge one", [][2]int{{1, 5}, {6, 9}}, func() any {
					return arrays.InsertInterval([][2]int{{1, 3}, {6, 9}}, [2]int{2, 5})
				}),
				eq("merge many", [][2]int{{1, 2}, {3, 10}, {12, 16}}, func() any {
					return arrays.InsertInterval([][2]int{{1, 2}, {3, 5}, {6, 7}, {8, 10}, {12, 16}}, [2]int{4, 8})
				}),
			},
		},
		{
			Slug: "spiral-matrix", Title: "Spiral Matrix",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"shrinking boundaries"},
			Time:       "O(m·n)", Space: "O(1) extra",
			Cases: []Case{
				eq("3x3", []int{1, 2, 3, 6, 9, 8, 7, 4, 5}, func() any {
					return arrays.SpiralOrder([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
				}),
				eq("3x4", []int{1, 2, 3, 4, 8, 12, 11, 10, 9, 5, 6, 7}, func() any {
					return arrays.SpiralOrder([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
				}),
			},
		},
		{
			Slug: "rotate-image", Title: "Rotate Image",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"transpose then reverse rows"},
			Time:       "O(n²)", Space: "O(1)",
			Cases: []Case{
				eq("3x3", [][]int{{7, 4, 1}, {8, 5, 2}, {9, 6, 3}}, func() any {
					m := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
					arrays.RotateImage(m)
					return m
				}),
			},
		},
		{
			Slug: "longest-common-prefix", Title: "Longest Common Prefix",
			Category: Arrays, Difficulty: Easy,
			Approaches: []string{"vertical scan"},
			Time:       "O(total chars)", Space: "O(1)",
			Cases: []Case{
				eq("fl", "fl", func() any { return arrays.LongestCommonPrefix([]string{"flower", "flow", "flight"}) }),
				eq("none", "", func() any { return arrays.LongestCommonPrefix([]string{"dog", "racecar", "car"}) }),
			},
		},
		{
			Slug: "reverse-words", Title: "Reverse Words in a String",
			Category: Arrays, Difficulty: Medium,
			Approaches: []string{"split on whitespace, reverse"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("simple", "blue is sky the", func() any { return arrays.ReverseWords("the sky is blue") }),
				eq("extra spaces", "world hello", func() any { return arrays.ReverseWords("  hello   world  ") }),
			},
		},
	}
}

func backtrackingProblems() []Problem {
	return []Problem{
		{
			Slug: "subsets", Title: "Subsets",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"index-increasing backtracking"},
			Time:       "O(n·2ⁿ)", Space: "O(n)",
			Cases: []Case{
				eq("1 2 3", [][]int{{}, {1}, {1, 2}, {1, 2, 3}, {1, 3}, {2}, {2, 3}, {3}}, func() any {
					return backtracking.Subsets([]int{1, 2, 3})
				}),
			},
		},
		{
			Slug: "permutations", Title: "Permutations",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"backtracking over unused indices"},
			Time:       "O(n·n!)", Space: "O(n)",
			Cases: []Case{
				eq("1 2 3", [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}, func() any {
					return backtracking.Permutations([]int{1, 2, 3})
				}),
			},
		},
		{
			Slug: "combination-sum", Title: "Combination Sum",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"sorted candidates with pruning"},
			Time:       "exponential", Space: "O(target)",
			Cases: []Case{
				eq("target 7", [][]int{{2, 2, 3}, {7}}, func() any { return backtracking.CombinationSum([]int{2, 3, 6, 7}, 7) }),
				eq("target 8", [][]int{{2, 2, 2, 2}, {2, 3, 3}, {3, 5}}, func() any {
					return backtracking.CombinationSum([]int{2, 3, 5}, 8)
				}),
			},
		},
		{
			Slug: "generate-parentheses", Title: "Generate Parentheses",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"open/close counters"},
			Time:       "O(4ⁿ/√n)", Space: "O(n)",
			Cases: []Case{
				eq("n=3", []string{"((()))", "(()())", "(())()", "()(())", "()()()"}, func() any {
					return backtracking.GenerateParentheses(3)
				}),
			},
		},
		{
			Slug: "letter-combinations", Title: "Letter Combinations of a Phone Number",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"digit-by-digit recursion"},
			Time:       "O(4ⁿ·n)", Space: "O(n)",
			Cases: []Case{
				eq("23", []string{"ad", "ae", "af", "bd", "be", "bf", "cd", "ce", "cf"}, func() any {
					return backtracking.LetterCombinations("23")
				}),
				eq("empty", []string(nil), func() any { return backtracking.LetterCombinations("") }),
			},
		},
		{
			Slug: "n-queens", Title: "N-Queens",
			Category: Backtracking, Difficulty: Hard,
			Approaches: []string{"row by row with column and diagonal sets"},
			Time:       "O(n!)", Space: "O(n)",
			Cases: []Case{
				eq("n=4 boards", [][]string{{".Q..", "...Q", "Q...", "..Q."}, {"..Q.", "Q...", "...Q", ".Q.."}}, func() any {
					return backtracking.SolveNQueens(4)
				}),
				eq("n=8 count", 92, func() any { return backtracking.TotalNQueens(8) }),
			},
		},
		{
			Slug: "word-search", Title: "Word Search",
			Category: Backtracking, Difficulty: Medium,
			Approaches: []string{"DFS with in-place marking"},
			Time:       "O(m·n·3ᴸ)", Space: "O(L)",
			Cases: []Case{
				eq("ABCCED", true, func() any { return backtracking.Exist(wordBoard(), "ABCCED") }),
				eq("no reuse", false, func() any { return backtracking.Exist(wordBoard(), "ABCB") }),
			},
		},
	}
}

func wordBoard() [][]byte {
	return [][]byte{[]byte("ABCE"), []byte("SFCS"), []byte("ADEE")}
}
