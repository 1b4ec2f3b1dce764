package search_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/search"
)

func TestBinarySearch(t *testing.T) {
	xs := []int{-1, 0, 3, 5, 9, 12}
	for i, v := range xs {
		assert.Equal(t, i, search.BinarySearch(xs, v))
	}
	assert.Equal(t, -1, search.BinarySearch(xs, 2))
	assert.Equal(t, -1, search.BinarySearch(xs, 13))
	assert.Equal(t, -1, search.BinarySearch([]int{}, 1))
	assert.Equal(t, 2, search.BinarySearch([]string{"a", "c", "e"}, "e"))
	assert.Equal(t, 1, search.BinarySearch([]float64{0.5, 1.5}, 1.5))
}

// TestBounds_AgreeWithSortPackage compares against sort.SearchInts on a
// slice with duplicates.
func TestBounds_AgreeWithSortPackage(t *testing.T) {
	xs := []int{1, 2, 2, 2, 4, 7, 7, 9}
	for target := 0; target <= 10; target++ {
		assert.Equal(t, sort.SearchInts(xs, target), search.LowerBound(xs, target), "lower %d", target)
		assert.Equal(t, sort.SearchInts(xs, target+1), search.UpperBound(xs, target), "upper %d", target)
		assert.Equal(t, search.LowerBound(xs, target), search.SearchInsert(xs, target))
	}
}

func TestSearchRange(t *testing.T) {
	assert.Equal(t, [2]int{3, 4}, search.SearchRange([]int{5, 7, 7, 8, 8, 10}, 8))
	assert.Equal(t, [2]int{-1, -1}, search.SearchRange([]int{5, 7, 7, 8, 8, 10}, 6))
	assert.Equal(t, [2]int{-1, -1}, search.SearchRange([]int{}, 0))
	assert.Equal(t, [2]int{0, 2}, search.SearchRange([]int{1, 1, 1}, 1))
}

func TestFirstTrue(t *testing.T) {
	assert.Equal(t, 5, search.FirstTrue(0, 10, func(i int) bool { return i*i > 20 }))
	assert.Equal(t, 10, search.FirstTrue(0, 10, func(int) bool { return false }))
	assert.Equal(t, 3, search.FirstTrue(3, 10, func(int) bool { return true }))
	assert.Equal(t, 4, search.FirstTrue(4, 4, func(int) bool { return true }), "empty range")
}

func TestSqrtInt(t *testing.T) {
	for x := -2; x <= 2000; x++ {
		r := search.SqrtInt(x)
		if x < 0 {
			assert.Equal(t, 0, r)
			continue
		}
		assert.True(t, r*r <= x && (r+1)*(r+1) > x, "sqrt(%d) = %d", x, r)
	}
	assert.Equal(t, 46340, search.SqrtInt(2147395600))
	assert.Equal(t, 3037000499, search.SqrtInt(math.MaxInt64))
}

func TestSearchRotated(t *testing.T) {
	xs := []int{4, 5, 6, 7, 0, 1, 2}
	for i, v := range xs {
		assert.Equal(t, i, search.SearchRotated(xs, v), "target %d", v)
	}
	assert.Equal(t, -1, search.SearchRotated(xs, 3))
	assert.Equal(t, -1, search.SearchRotated([]int{1}, 0))
	assert.Equal(t, -1, search.SearchRotated(nil, 0))
}

func TestFindMinRotated(t *testing.T) {
	assert.Equal(t, 1, search.FindMinRotated([]int{3, 4, 5, 1, 2}))
	assert.Equal(t, 0, search.FindMinRotated([]int{4, 5, 6, 7, 0, 1, 2}))
	assert.Equal(t, 11, search.FindMinRotated([]int{11, 13, 15, 17}))
	assert.Equal(t, 1, search.FindMinRotated([]int{2, 1}))
}
