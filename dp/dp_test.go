package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dp"
)

// TestClimbStairs_Approaches verifies that all three approaches agree
// with the Fibonacci-shifted sequence and reject negative input.
func TestClimbStairs_Approaches(t *testing.T) {
	approaches := map[string]func(int) (int, error){
		"rolling": dp.ClimbStairs,
		"table":   dp.ClimbStairsTable,
		"memo":    dp.ClimbStairsMemo,
	}
	want := map[int]int{0: 1, 1: 1, 2: 2, 3: 3, 5: 8, 10: 89, 45: 1836311903}
	for name, climb := range approaches {
		for n, w := range want {
			got, err := climb(n)
			require.NoError(t, err, "%s(%d)", name, n)
			assert.Equal(t, w, got, "%s(%d)", name, n)
		}
		_, err := climb(-1)
		assert.ErrorIs(t, err, dp.ErrNegativeInput, name)
	}
}

func TestUniquePaths(t *testing.T) {
	got, err := dp.UniquePaths(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 28, got)

	got, _ = dp.UniquePaths(3, 2)
	assert.Equal(t, 3, got)
	got, _ = dp.UniquePaths(1, 1)
	assert.Equal(t, 1, got)
	got, _ = dp.UniquePaths(0, 4)
	assert.Equal(t, 0, got)

	_, err = dp.UniquePaths(-1, 2)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestRob(t *testing.T) {
	assert.Equal(t, 4, dp.Rob([]int{1, 2, 3, 1}))
	assert.Equal(t, 12, dp.Rob([]int{2, 7, 9, 3, 1}))
	assert.Equal(t, 0, dp.Rob(nil))
}

func TestMaxSubArray(t *testing.T) {
	assert.Equal(t, 6, dp.MaxSubArray([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}))
	assert.Equal(t, -1, dp.MaxSubArray([]int{-3, -1, -2}))
	assert.Equal(t, 23, dp.MaxSubArray([]int{5, 4, -1, 7, 8}))
}

func TestCoinChange(t *testing.T) {
	assert.Equal(t, 3, dp.CoinChange([]int{1, 2, 5}, 11))
	assert.Equal(t, -1, dp.CoinChange([]int{2}, 3))
	assert.Equal(t, 0, dp.CoinChange([]int{1}, 0))
	assert.Equal(t, 20, dp.CoinChange([]int{186, 419, 83, 408}, 6249))
}

func TestLengthOfLIS(t *testing.T) {
	cases := []struct {
		in   []int
		want int
	}{
		{[]int{10, 9, 2, 5, 3, 7, 101, 18}, 4},
		{[]int{0, 1, 0, 3, 2, 3}, 4},
		{[]int{7, 7, 7, 7}, 1},
		{nil, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dp.LengthOfLIS(tc.in), "patience %v", tc.in)
		assert.Equal(t, tc.want, dp.LengthOfLISQuadratic(tc.in), "quadratic %v", tc.in)
	}
}

func TestWordBreak(t *testing.T) {
	assert.True(t, dp.WordBreak("leetcode", []string{"leet", "code"}))
	assert.True(t, dp.WordBreak("applepenapple", []string{"apple", "pen"}))
	assert.False(t, dp.WordBreak("catsandog", []string{"cats", "dog", "sand", "and", "cat"}))
	assert.True(t, dp.WordBreak("", nil))
}

func TestCanPartition(t *testing.T) {
	assert.True(t, dp.CanPartition([]int{1, 5, 11, 5}))
	assert.False(t, dp.CanPartition([]int{1, 2, 3, 5}))
	assert.True(t, dp.CanPartition(nil))
}

func TestLongestCommonSubsequence(t *testing.T) {
	assert.Equal(t, 3, dp.LongestCommonSubsequence("abcde", "ace"))
	assert.Equal(t, 3, dp.LongestCommonSubsequence("abc", "abc"))
	assert.Equal(t, 0, dp.LongestCommonSubsequence("abc", "def"))
	assert.Equal(t, 4, dp.LongestCommonSubsequence("AGGTAB", "GXTXAYB"))
}
