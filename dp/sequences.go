package dp

import (
	"github.com/katalvlaran/algokit/search"
)

// Rob returns the maximum sum of non-adjacent houses.
// rob(i) = max(rob(i-1), rob(i-2) + nums[i]), two rolling values.
func Rob(nums []int) int {
	skip, take := 0, 0 // best excluding / including the previous house
	for _, v := range nums {
		skip, take = max(skip, take), skip+v
	}

	return max(skip, take)
}

// MaxSubArray returns the largest sum of a non-empty contiguous subarray
// (Kadane). nums must be non-empty.
func MaxSubArray(nums []int) int {
	best, run := nums[0], nums[0]
	for _, v := range nums[1:] {
		run = max(v, run+v)
		best = max(best, run)
	}

	return best
}

// CoinChange returns the fewest coins summing to amount, or -1 if the
// amount cannot be formed. Coins are reusable.
//
// Time: O(amount·len(coins)). Memory: O(amount).
func CoinChange(coins []int, amount int) int {
	const unreachable = int(^uint(0) >> 1)
	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = unreachable
		for _, c := range coins {
			if c <= a && best[a-c] != unreachable {
				best[a] = min(best[a], best[a-c]+1)
			}
		}
	}
	if best[amount] == unreachable {
		return -1
	}

	return best[amount]
}

// LengthOfLIS returns the length of the longest strictly increasing
// subsequence. tails[k] holds the smallest tail of any increasing
// subsequence of length k+1; each value replaces its lower bound.
//
// Time: O(n log n). Memory: O(n).
func LengthOfLIS(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, v := range nums {
		i := search.LowerBound(tails, v)
		if i == len(tails) {
			tails = append(tails, v)
		} else {
			tails[i] = v
		}
	}

	return len(tails)
}

// LengthOfLISQuadratic is the O(n²) table approach: lis[i] is the longest
// increasing subsequence ending at i.
func LengthOfLISQuadratic(nums []int) int {
	best := 0
	lis := make([]int, len(nums))
	for i := range nums {
		lis[i] = 1
		for j := 0; j < i; j++ {
			if nums[j] < nums[i] {
				lis[i] = max(lis[i], lis[j]+1)
			}
		}
		best = max(best, lis[i])
	}

	return best
}

// WordBreak reports whether s can be segmented into a sequence of words
// from dict (words may repeat).
//
// Time: O(n²) substring checks. Memory: O(n + |dict|).
func WordBreak(s string, dict []string) bool {
	words := make(map[string]struct{}, len(dict))
	longest := 0
	for _, w := range dict {
		words[w] = struct{}{}
		longest = max(longest, len(w))
	}
	ok := make([]bool, len(s)+1)
	ok[0] = true
	for end := 1; end <= len(s); end++ {
		for start := max(0, end-longest); start < end; start++ {
			if !ok[start] {
				continue
			}
			if _, hit := words[s[start:end]]; hit {
				ok[end] = true
				break
			}
		}
	}

	return ok[len(s)]
}

// CanPartition reports whether non-negative nums split into two subsets of
// equal sum (0/1 knapsack over reachable sums, iterating sums downward).
func CanPartition(nums []int) bool {
	total := 0
	for _, v := range nums {
		total += v
	}
	if total%2 == 1 {
		return false
	}
	target := total / 2
	reach := make([]bool, target+1)
	reach[0] = true
	for _, v := range nums {
		for s := target; s >= v; s-- {
			reach[s] = reach[s] || reach[s-v]
		}
	}

	return reach[target]
}
