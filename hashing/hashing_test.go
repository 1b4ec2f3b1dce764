package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/hashing"
)

func TestTwoSum_Approaches(t *testing.T) {
	for name, twoSum := range map[string]func([]int, int) []int{
		"hash":  hashing.TwoSum,
		"brute": hashing.TwoSumBrute,
	} {
		assert.Equal(t, []int{0, 1}, twoSum([]int{2, 7, 11, 15}, 9), name)
		assert.Equal(t, []int{1, 2}, twoSum([]int{3, 2, 4}, 6), name)
		assert.Equal(t, []int{0, 1}, twoSum([]int{3, 3}, 6), name)
		assert.Nil(t, twoSum([]int{1, 2}, 7), name)
	}
}

func TestContainsDuplicate(t *testing.T) {
	assert.True(t, hashing.ContainsDuplicate([]int{1, 2, 3, 1}))
	assert.False(t, hashing.ContainsDuplicate([]int{1, 2, 3, 4}))
	assert.False(t, hashing.ContainsDuplicate(nil))
}

func TestIsAnagram(t *testing.T) {
	assert.True(t, hashing.IsAnagram("anagram", "nagaram"))
	assert.False(t, hashing.IsAnagram("rat", "car"))
	assert.False(t, hashing.IsAnagram("ab", "a"))
	assert.True(t, hashing.IsAnagram("héllo", "olléh"))
}

func TestGroupAnagrams(t *testing.T) {
	got := hashing.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	assert.Equal(t, [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}, got)
	assert.Equal(t, [][]string{{""}}, hashing.GroupAnagrams([]string{""}))
}

func TestLongestConsecutive(t *testing.T) {
	assert.Equal(t, 4, hashing.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}))
	assert.Equal(t, 9, hashing.LongestConsecutive([]int{0, 3, 7, 2, 5, 8, 4, 6, 0, 1}))
	assert.Equal(t, 0, hashing.LongestConsecutive(nil))
}

func TestTopKFrequent(t *testing.T) {
	got, err := hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = hashing.TopKFrequent([]int{4, 5, 5, 4, 6}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got, "ties keep first appearance")

	_, err = hashing.TopKFrequent([]int{1}, 2)
	assert.ErrorIs(t, err, hashing.ErrInvalidK)
	_, err = hashing.TopKFrequent([]int{1}, 0)
	assert.ErrorIs(t, err, hashing.ErrInvalidK)
}

func TestFirstUniqChar(t *testing.T) {
	assert.Equal(t, 0, hashing.FirstUniqChar("leetcode"))
	assert.Equal(t, 2, hashing.FirstUniqChar("loveleetcode"))
	assert.Equal(t, -1, hashing.FirstUniqChar("aabb"))
}

func TestMajorityElement(t *testing.T) {
	assert.Equal(t, 3, hashing.MajorityElement([]int{3, 2, 3}))
	assert.Equal(t, 2, hashing.MajorityElement([]int{2, 2, 1, 1, 1, 2, 2}))
}
