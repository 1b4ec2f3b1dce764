package greedy

import "sort"

// CanJump reports whether the last index is reachable when nums[i] is the
// maximum jump length from i. Tracks the furthest reachable index.
func CanJump(nums []int) bool {
	reach := 0
	for i, v := range nums {
		if i > reach {
			return false
		}
		reach = max(reach, i+v)
	}

	return true
}

// Jump returns the minimum number of jumps to reach the last index, assuming
// it is reachable. Each jump closes a BFS-like level [start, end].
func Jump(nums []int) int {
	jumps, end, furthest := 0, 0, 0
	for i := 0; i < len(nums)-1; i++ {
		furthest = max(furthest, i+nums[i])
		if i == end {
			jumps++
			end = furthest
		}
	}

	return jumps
}

// MaxProfit returns the best profit with unlimited buy/sell transactions
// (holding at most one share): the sum of all positive day-to-day moves.
func MaxProfit(prices []int) int {
	profit := 0
	for i := 1; i < len(prices); i++ {
		if d := prices[i] - prices[i-1]; d > 0 {
			profit += d
		}
	}

	return profit
}

// MaxProfitOnce returns the best profit from a single buy followed by a
// later sell, or 0 when prices only fall.
func MaxProfitOnce(prices []int) int {
	if len(prices) == 0 {
		return 0
	}
	low, best := prices[0], 0
	for _, p := range prices[1:] {
		best = max(best, p-low)
		low = min(low, p)
	}

	return best
}

// CanCompleteCircuit returns the unique start station from which a car with
// an empty tank can drive the full circle, or -1. Whenever the running tank
// goes negative, no station up to here can be the start.
func CanCompleteCircuit(gas, cost []int) int {
	total, tank, start := 0, 0, 0
	for i := range gas {
		d := gas[i] - cost[i]
		total += d
		tank += d
		if tank < 0 {
			start, tank = i+1, 0
		}
	}
	if total < 0 {
		return -1
	}

	return start
}

// FindContentChildren returns how many children can be satisfied when
// child i needs a cookie of size ≥ greed[i] and each cookie goes to at most
// one child. The smallest sufficient cookie is always used.
func FindContentChildren(greed, sizes []int) int {
	g := append([]int(nil), greed...)
	s := append([]int(nil), sizes...)
	sort.Ints(g)
	sort.Ints(s)
	child := 0
	for _, size := range s {
		if child < len(g) && size >= g[child] {
			child++
		}
	}

	return child
}

// PartitionLabels splits s into as many parts as possible so that each
// letter appears in at most one part, returning the part sizes.
func PartitionLabels(s string) []int {
	var last [256]int
	for i := 0; i < len(s); i++ {
		last[s[i]] = i
	}
	var sizes []int
	start, end := 0, 0
	for i := 0; i < len(s); i++ {
		end = max(end, last[s[i]])
		if i == end {
			sizes = append(sizes, end-start+1)
			start = i + 1
		}
	}

	return sizes
}

// EraseOverlapIntervals returns the minimum number of intervals to remove so
// the rest do not overlap (touching end points are fine). Keeps the
// interval that ends earliest.
func EraseOverlapIntervals(intervals [][2]int) int {
	if len(intervals) == 0 {
		return 0
	}
	sorted := append([][2]int(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][1] < sorted[j][1] })
	kept, end := 1, sorted[0][1]
	for _, iv := range sorted[1:] {
		if iv[0] >= end {
			kept++
			end = iv[1]
		}
	}

	return len(sorted) - kept
}
