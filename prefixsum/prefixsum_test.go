package prefixsum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/prefixsum"
)

func TestRunningSum(t *testing.T) {
	in := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 3, 6, 10}, prefixsum.RunningSum(in))
	assert.Equal(t, []int{1, 2, 3, 4}, in, "input untouched")
	assert.Empty(t, prefixsum.RunningSum(nil))
}

func TestPivotIndex(t *testing.T) {
	assert.Equal(t, 3, prefixsum.PivotIndex([]int{1, 7, 3, 6, 5, 6}))
	assert.Equal(t, -1, prefixsum.PivotIndex([]int{1, 2, 3}))
	assert.Equal(t, 0, prefixsum.PivotIndex([]int{2, 1, -1}))
	assert.Equal(t, -1, prefixsum.PivotIndex(nil))
}

func TestSubarraySum(t *testing.T) {
	assert.Equal(t, 2, prefixsum.SubarraySum([]int{1, 1, 1}, 2))
	assert.Equal(t, 2, prefixsum.SubarraySum([]int{1, 2, 3}, 3))
	assert.Equal(t, 3, prefixsum.SubarraySum([]int{1, -1, 0}, 0))
	assert.Equal(t, 0, prefixsum.SubarraySum(nil, 0))
}

func TestFindMaxLength(t *testing.T) {
	assert.Equal(t, 2, prefixsum.FindMaxLength([]int{0, 1}))
	assert.Equal(t, 2, prefixsum.FindMaxLength([]int{0, 1, 0}))
	assert.Equal(t, 8, prefixsum.FindMaxLength([]int{0, 0, 1, 0, 0, 0, 1, 1, 1}))
	assert.Equal(t, 0, prefixsum.FindMaxLength([]int{1, 1}))
}

func TestNumArray(t *testing.T) {
	a := prefixsum.NewNumArray([]int{-2, 0, 3, -5, 2, -1})
	for _, tc := range []struct{ l, r, want int }{{0, 2, 1}, {2, 5, -1}, {0, 5, -3}, {4, 4, 2}} {
		got, err := a.SumRange(tc.l, tc.r)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "[%d, %d]", tc.l, tc.r)
	}
	for _, bad := range [][2]int{{-1, 2}, {0, 6}, {3, 2}} {
		_, err := a.SumRange(bad[0], bad[1])
		assert.ErrorIs(t, err, prefixsum.ErrRangeOutOfBounds)
	}
	_, err := prefixsum.NewNumArray(nil).SumRange(0, 0)
	assert.ErrorIs(t, err, prefixsum.ErrRangeOutOfBounds)
}

func TestNumMatrix(t *testing.T) {
	m, err := prefixsum.NewNumMatrix([][]int{
		{3, 0, 1, 4, 2},
		{5, 6, 3, 2, 1},
		{1, 2, 0, 1, 5},
		{4, 1, 0, 1, 7},
		{1, 0, 3, 0, 5},
	})
	require.NoError(t, err)

	for _, tc := range []struct{ r1, c1, r2, c2, want int }{
		{2, 1, 4, 3, 8},
		{1, 1, 2, 2, 11},
		{1, 2, 2, 4, 12},
		{0, 0, 0, 0, 3},
	} {
		got, err := m.SumRegion(tc.r1, tc.c1, tc.r2, tc.c2)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	_, err = m.SumRegion(0, 0, 5, 0)
	assert.ErrorIs(t, err, prefixsum.ErrRangeOutOfBounds)
	_, err = m.SumRegion(2, 2, 1, 1)
	assert.ErrorIs(t, err, prefixsum.ErrRangeOutOfBounds)

	_, err = prefixsum.NewNumMatrix([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, prefixsum.ErrNonRectangular)
}
