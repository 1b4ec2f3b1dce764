package catalog

import (
	"github.com/katalvlaran/algokit/prefixsum"
	"github.com/katalvlaran/algokit/slidingwindow"
	"github.com/katalvlaran/algokit/twopointers"
)

func prefixSumProblems() []Problem {
	return []Problem{
		{
			Slug: "running-sum", Title: "Running Sum of 1d Array",
			Category: PrefixSum, Difficulty: Easy,
			Approaches: []string{"cumulative total"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("1 2 3 4", []int{1, 3, 6, 10}, func() any { return prefixsum.RunningSum([]int{1, 2, 3, 4}) }),
			},
		},
		{
			Slug: "pivot-index", Title: "Find Pivot Index",
			Category: PrefixSum, Difficulty: Easy,
			Approaches: []string{"total minus left sum"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("pivot 3", 3, func() any { return prefixsum.PivotIndex([]int{1, 7, 3, 6, 5, 6}) }),
				eq("none", -1, func() any { return prefixsum.PivotIndex([]int{1, 2, 3}) }),
			},
		},
		{
			Slug: "subarray-sum-equals-k", Title: "Subarray Sum Equals K",
			Category: PrefixSum, Difficulty: Medium,
			Approaches: []string{"prefix sums with a count map"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("1 1 1", 2, func() any { return prefixsum.SubarraySum([]int{1, 1, 1}, 2) }),
				eq("1 2 3", 2, func() any { return prefixsum.SubarraySum([]int{1, 2, 3}, 3) }),
			},
		},
		{
			Slug: "contiguous-array", Title: "Contiguous Array",
			Category: PrefixSum, Difficulty: Medium,
			Approaches: []string{"balance prefix with first-seen map"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("0 1 0", 2, func() any { return prefixsum.FindMaxLength([]int{0, 1, 0}) }),
			},
		},
		{
			Slug: "range-sum-query", Title: "Range Sum Query - Immutable",
			Category: PrefixSum, Difficulty: Easy,
			Approaches: []string{"prefix table"},
			Time:       "O(n) build, O(1) query", Space: "O(n)",
			Cases: []Case{
				eq("sum 2..5", -1, func() any {
					return result(prefixsum.NewNumArray([]int{-2, 0, 3, -5, 2, -1}).SumRange(2, 5))
				}),
				eq("out of bounds", prefixsum.ErrRangeOutOfBounds, func() any {
					return result(prefixsum.NewNumArray([]int{1}).SumRange(0, 1))
				}),
			},
		},
		{
			Slug: "range-sum-query-2d", Title: "Range Sum Query 2D - Immutable",
			Category: PrefixSum, Difficulty: Medium,
			Approaches: []string{"2-D prefix table, inclusion-exclusion"},
			Time:       "O(R·C) build, O(1) query", Space: "O(R·C)",
			Cases: []Case{
				eq("region", 8, func() any {
					m, err := prefixsum.NewNumMatrix([][]int{
						{3, 0, 1, 4, 2},
						{5, 6, 3, 2, 1},
						{1, 2, 0, 1, 5},
						{4, 1, 0, 1, 7},
						{1, 0, 3, 0, 5},
					})
					if err != nil {
						return err
					}
					return result(m.SumRegion(2, 1, 4, 3))
				}),
			},
		},
	}
}

func slidingWindowProblems() []Problem {
	return []Problem{
		{
			Slug: "longest-substring-without-repeating", Title: "Longest Substring Without Repeating Characters",
			Category: SlidingWindow, Difficulty: Medium,
			Approaches: []string{"last-index jump (default)", "count window"},
			Time:       "O(n)", Space: "O(k)",
			Cases: []Case{
				eq("abcabcbb", 3, func() any { return slidingwindow.LengthOfLongestSubstring("abcabcbb") }),
				eq("pwwkew set", 3, func() any { return slidingwindow.LengthOfLongestSubstringSet("pwwkew") }),
			},
		},
		{
			Slug: "minimum-size-subarray-sum", Title: "Minimum Size Subarray Sum",
			Category: SlidingWindow, Difficulty: Medium,
			Approaches: []string{"shrink while the sum suffices"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("target 7", 2, func() any { return slidingwindow.MinSubArrayLen(7, []int{2, 3, 1, 2, 4, 3}) }),
				eq("none", 0, func() any { return slidingwindow.MinSubArrayLen(11, []int{1, 1, 1, 1}) }),
			},
		},
		{
			Slug: "sliding-window-maximum", Title: "Sliding Window Maximum",
			Category: SlidingWindow, Difficulty: Hard,
			Approaches: []string{"monotonic deque"},
			Time:       "O(n)", Space: "O(k)",
			Cases: []Case{
				eq("k=3", []int{3, 3, 5, 5, 6, 7}, func() any {
					return result(slidingwindow.MaxSlidingWindow([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3))
				}),
				eq("k=0", slidingwindow.ErrInvalidWindow, func() any {
					return result(slidingwindow.MaxSlidingWindow([]int{1}, 0))
				}),
			},
		},
		{
			Slug: "find-all-anagrams", Title: "Find All Anagrams in a String",
			Category: SlidingWindow, Difficulty: Medium,
			Approaches: []string{"fixed window of byte counts"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("abc", []int{0, 6}, func() any { return slidingwindow.FindAnagrams("cbaebabacd", "abc") }),
			},
		},
		{
			Slug: "longest-repeating-character-replacement", Title: "Longest Repeating Character Replacement",
			Category: SlidingWindow, Difficulty: Medium,
			Approaches: []string{"window with most-frequent count"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("k=1", 4, func() any { return slidingwindow.CharacterReplacement("AABABBA", 1) }),
			},
		},
		{
			Slug: "contains-duplicate-ii", Title: "Contains Duplicate II",
			Category: SlidingWindow, Difficulty: Easy,
			Approaches: []string{"set of the last k values"},
			Time:       "O(n)", Space: "O(k)",
			Cases: []Case{
				eq("within k", true, func() any { return slidingwindow.ContainsNearbyDuplicate([]int{1, 2, 3, 1}, 3) }),
				eq("too far", false, func() any { return slidingwindow.ContainsNearbyDuplicate([]int{1, 2, 3, 1, 2, 3}, 2) }),
			},
		},
		{
			Slug: "minimum-window-substring", Title: "Minimum Window Substring",
			Category: SlidingWindow, Difficulty: Hard,
			Approaches: []string{"missing-count window"},
			Time:       "O(n + m)", Space: "O(1)",
			Cases: []Case{
				eq("BANC", "BANC", func() any { return slidingwindow.MinWindow("ADOBECODEBANC", "ABC") }),
				eq("impossible", "", func() any { return slidingwindow.MinWindow("a", "aa") }),
			},
		},
		{
			Slug: "maximum-average-subarray", Title: "Maximum Average Subarray I",
			Category: SlidingWindow, Difficulty: Easy,
			Approaches: []string{"fixed window sum"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("k=4", 12.75, func() any { return result(slidingwindow.FindMaxAverage([]int{1, 12, -5, -6, 50, 3}, 4)) }),
			},
		},
	}
}

func twoPointersProblems() []Problem {
	return []Problem{
		{
			Slug: "two-sum-sorted", Title: "Two Sum II - Input Array Is Sorted",
			Category: TwoPointers, Difficulty: Medium,
			Approaches: []string{"converging pointers"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("9", [2]int{1, 2}, func() any { return twopointers.TwoSumSorted([]int{2, 7, 11, 15}, 9) }),
			},
		},
		{
			Slug: "three-sum", Title: "3Sum",
			Category: TwoPointers, Difficulty: Medium,
			Approaches: []string{"sort, fix one, converge on the rest"},
			Time:       "O(n²)", Space: "O(n)",
			Cases: []Case{
				eq("classic", [][3]int{{-1, -1, 2}, {-1, 0, 1}}, func() any {
					return twopointers.ThreeSum([]int{-1, 0, 1, 2, -1, -4})
				}),
				eq("zeros", [][3]int{{0, 0, 0}}, func() any { return twopointers.ThreeSum([]int{0, 0, 0}) }),
			},
		},
		{
			Slug: "container-with-most-water", Title: "Container With Most Water",
			Category: TwoPointers, Difficulty: Medium,
			Approaches: []string{"move the shorter wall"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("49", 49, func() any { return twopointers.MaxArea([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}) }),
			},
		},
		{
			Slug: "valid-palindrome", Title: "Valid Palindrome",
			Category: TwoPointers, Difficulty: Easy,
			Approaches: []string{"converging pointers skipping punctuation"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("panama", true, func() any { return twopointers.IsPalindrome("A man, a plan, a canal: Panama") }),
				eq("race a car", false, func() any { return twopointers.IsPalindrome("race a car") }),
			},
		},
		{
			Slug: "move-zeroes", Title: "Move Zeroes",
			Category: TwoPointers, Difficulty: Easy,
			Approaches: []string{"read/write pointers"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("0 1 0 3 12", []int{1, 3, 12, 0, 0}, func() any {
					nums := []int{0, 1, 0, 3, 12}
					twopointers.MoveZeroes(nums)
					return nums
				}),
			},
		},
		{
			Slug: "remove-duplicates-sorted-array", Title: "Remove Duplicates from Sorted Array",
			Category: TwoPointers, Difficulty: Easy,
			Approaches: []string{"read/write pointers"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("prefix", []int{0, 1, 2, 3, 4}, func() any {
					nums := []int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}
					return nums[:twopointers.RemoveDuplicates(nums)]
				}),
			},
		},
		{
			Slug: "trapping-rain-water", Title: "Trapping Rain Water",
			Category: TwoPointers, Difficulty: Hard,
			Approaches: []string{"converging pointers with running maxima"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("6", 6, func() any { return twopointers.Trap([]int{0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1}) }),
				eq("9", 9, func() any { return twopointers.Trap([]int{4, 2, 0, 3, 2, 5}) }),
			},
		},
		{
			Slug: "sort-colors", Title: "Sort Colors",
			Category: TwoPointers, Difficulty: Medium,
			Approaches: []string{"Dutch national flag"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("mixed", []int{0, 0, 1, 1, 2, 2}, func() any {
					nums := []int{2, 0, 2, 1, 1, 0}
					twopointers.SortColors(nums)
					return nums
				}),
			},
		},
	}
}
