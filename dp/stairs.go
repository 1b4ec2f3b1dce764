package dp

import (
	"fmt"

	"github.com/katalvlaran/algokit/templates"
)

// ClimbStairs counts the distinct ways to climb n steps taking 1 or 2 steps
// at a time, keeping only the last two counts. ways(0) = 1.
//
// Time: O(n). Memory: O(1).
func ClimbStairs(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: stairs=%d", ErrNegativeInput, n)
	}
	prev, curr := 1, 1 // ways(i-1), ways(i)
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// ClimbStairsTable is the bottom-up table approach. Time O(n), memory O(n).
func ClimbStairsTable(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: stairs=%d", ErrNegativeInput, n)
	}
	ways := make([]int, n+2)
	ways[0], ways[1] = 1, 1
	for i := 2; i <= n; i++ {
		ways[i] = ways[i-1] + ways[i-2]
	}

	return ways[n], nil
}

// ClimbStairsMemo is the top-down approach: ways(n) = ways(n-1) + ways(n-2)
// with every sub-result cached. Time O(n), memory O(n).
func ClimbStairsMemo(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: stairs=%d", ErrNegativeInput, n)
	}
	memo := templates.NewMemo(func(self *templates.Memo[int, int], k int) int {
		if k < 2 {
			return 1
		}
		return self.Get(k-1) + self.Get(k-2)
	})

	return memo.Get(n), nil
}

// UniquePaths counts right/down lattice paths across an m×n grid using a
// single row. Returns ErrNegativeInput for negative dimensions and 0 when
// either dimension is zero.
func UniquePaths(m, n int) (int, error) {
	if m < 0 || n < 0 {
		return 0, fmt.Errorf("%w: grid=%dx%d", ErrNegativeInput, m, n)
	}
	if m == 0 || n == 0 {
		return 0, nil
	}
	row := make([]int, n)
	for j := range row {
		row[j] = 1
	}
	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			row[j] += row[j-1]
		}
	}

	return row[n-1], nil
}
