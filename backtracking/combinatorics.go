package backtracking

import (
	"sort"

	"github.com/katalvlaran/algokit/templates"
)

// Subsets returns every subset of distinct nums. Paths are index-increasing,
// so [1 2 3] yields [] [1] [1 2] [1 2 3] [1 3] [2] [2 3] [3].
func Subsets(nums []int) [][]int {
	idx := backtrackIndices(func(path []int) []int {
		start := 0
		if len(path) > 0 {
			start = path[len(path)-1] + 1
		}
		return rangeFrom(start, len(nums))
	}, func([]int) bool { return true }, nil)

	return pick(nums, idx)
}

// Permutations returns every ordering of distinct nums.
func Permutations(nums []int) [][]int {
	n := len(nums)
	idx := backtrackIndices(func(path []int) []int {
		used := make([]bool, n)
		for _, i := range path {
			used[i] = true
		}
		free := make([]int, 0, n-len(path))
		for i := 0; i < n; i++ {
			if !used[i] {
				free = append(free, i)
			}
		}
		return free
	}, func(path []int) bool { return len(path) == n }, nil)

	return pick(nums, idx)
}

// CombinationSum returns every multiset of candidates (each reusable any
// number of times) whose sum is target. Candidates must be distinct and
// positive; each combination is ascending and the list is lexicographic.
func CombinationSum(candidates []int, target int) [][]int {
	sorted := append([]int(nil), candidates...)
	sort.Ints(sorted)

	sum := func(path []int) int {
		s := 0
		for _, i := range path {
			s += sorted[i]
		}
		return s
	}
	idx := backtrackIndices(func(path []int) []int {
		if sum(path) >= target {
			return nil
		}
		start := 0
		if len(path) > 0 {
			start = path[len(path)-1]
		}
		return rangeFrom(start, len(sorted))
	}, func(path []int) bool {
		return len(path) > 0 && sum(path) == target
	}, func(path []int) bool {
		return sum(path) > target
	})

	return pick(sorted, idx)
}

// backtrackIndices runs templates.Backtrack over element indices.
func backtrackIndices(candidates func([]int) []int, accept, prune func([]int) bool) [][]int {
	return templates.Backtrack(templates.BacktrackSpec[int]{
		Candidates: candidates,
		Accept:     accept,
		Prune:      prune,
	})
}

func pick(nums []int, idx [][]int) [][]int {
	out := make([][]int, len(idx))
	for i, path := range idx {
		out[i] = make([]int, len(path))
		for j, k := range path {
			out[i][j] = nums[k]
		}
	}

	return out
}

func rangeFrom(lo, hi int) []int {
	if lo >= hi {
		return nil
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}
