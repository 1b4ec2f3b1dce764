package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/greedy"
)

func TestCanJump(t *testing.T) {
	assert.True(t, greedy.CanJump([]int{2, 3, 1, 1, 4}))
	assert.False(t, greedy.CanJump([]int{3, 2, 1, 0, 4}))
	assert.True(t, greedy.CanJump([]int{0}))
}

func TestJump(t *testing.T) {
	assert.Equal(t, 2, greedy.Jump([]int{2, 3, 1, 1, 4}))
	assert.Equal(t, 2, greedy.Jump([]int{2, 3, 0, 1, 4}))
	assert.Equal(t, 0, greedy.Jump([]int{0}))
}

func TestMaxProfit(t *testing.T) {
	assert.Equal(t, 7, greedy.MaxProfit([]int{7, 1, 5, 3, 6, 4}))
	assert.Equal(t, 4, greedy.MaxProfit([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, greedy.MaxProfit([]int{7, 6, 4, 3, 1}))

	assert.Equal(t, 5, greedy.MaxProfitOnce([]int{7, 1, 5, 3, 6, 4}))
	assert.Equal(t, 0, greedy.MaxProfitOnce([]int{7, 6, 4, 3, 1}))
	assert.Equal(t, 0, greedy.MaxProfitOnce(nil))
}

func TestCanCompleteCircuit(t *testing.T) {
	assert.Equal(t, 3, greedy.CanCompleteCircuit([]int{1, 2, 3, 4, 5}, []int{3, 4, 5, 1, 2}))
	assert.Equal(t, -1, greedy.CanCompleteCircuit([]int{2, 3, 4}, []int{3, 4, 3}))
}

func TestFindContentChildren(t *testing.T) {
	greed := []int{3, 1, 2}
	assert.Equal(t, 1, greedy.FindContentChildren(greed, []int{1, 1}))
	assert.Equal(t, []int{3, 1, 2}, greed, "input must not be sorted in place")
	assert.Equal(t, 2, greedy.FindContentChildren([]int{1, 2}, []int{1, 2, 3}))
}

func TestPartitionLabels(t *testing.T) {
	assert.Equal(t, []int{9, 7, 8}, greedy.PartitionLabels("ababcbacadefegdehijhklij"))
	assert.Equal(t, []int{10}, greedy.PartitionLabels("eccbbbbdec"))
	assert.Nil(t, greedy.PartitionLabels(""))
}

func TestEraseOverlapIntervals(t *testing.T) {
	assert.Equal(t, 1, greedy.EraseOverlapIntervals([][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 3}}))
	assert.Equal(t, 2, greedy.EraseOverlapIntervals([][2]int{{1, 2}, {1, 2}, {1, 2}}))
	assert.Equal(t, 0, greedy.EraseOverlapIntervals([][2]int{{1, 2}, {2, 3}}))
}
