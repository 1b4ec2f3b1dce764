package prefixsum

import (
	"errors"
	"fmt"
)

var (
	// ErrRangeOutOfBounds indicates a query range outside the table.
	ErrRangeOutOfBounds = errors.New("prefixsum: range out of bounds")

	// ErrNonRectangular indicates matrix rows of different lengths.
	ErrNonRectangular = errors.New("prefixsum: matrix rows differ in length")
)

// RunningSum returns out with out[i] = nums[0] + ... + nums[i].
// The input is not modified.
func RunningSum(nums []int) []int {
	out := make([]int, len(nums))
	sum := 0
	for i, v := range nums {
		sum += v
		out[i] = sum
	}

	return out
}

// PivotIndex returns the leftmost index whose left-hand sum equals its
// right-hand sum, or -1.
func PivotIndex(nums []int) int {
	total := 0
	for _, v := range nums {
		total += v
	}
	left := 0
	for i, v := range nums {
		if left == total-left-v {
			return i
		}
		left += v
	}

	return -1
}

// SubarraySum counts contiguous subarrays summing to k. A subarray (i, j]
// sums to k exactly when prefix[j] - k was seen as an earlier prefix.
func SubarraySum(nums []int, k int) int {
	seen := map[int]int{0: 1}
	count, sum := 0, 0
	for _, v := range nums {
		sum += v
		count += seen[sum-k]
		seen[sum]++
	}

	return count
}

// FindMaxLength returns the length of the longest contiguous subarray
// holding equally many 0s and 1s. Zeros count as -1, so a balanced span is
// one whose running total repeats.
func FindMaxLength(nums []int) int {
	first := map[int]int{0: -1}
	best, sum := 0, 0
	for i, v := range nums {
		if v == 0 {
			sum--
		} else {
			sum++
		}
		if j, ok := first[sum]; ok {
			best = max(best, i-j)
		} else {
			first[sum] = i
		}
	}

	return best
}

// NumArray answers inclusive range-sum queries over a fixed slice.
type NumArray struct {
	prefix []int // prefix[i] = sum of nums[:i]
}

// NewNumArray builds the prefix table for nums in O(n).
func NewNumArray(nums []int) *NumArray {
	prefix := make([]int, len(nums)+1)
	for i, v := range nums {
		prefix[i+1] = prefix[i] + v
	}

	return &NumArray{prefix: prefix}
}

// Len returns the number of elements covered by the table.
func (a *NumArray) Len() int { return len(a.prefix) - 1 }

// SumRange returns nums[l] + ... + nums[r].
func (a *NumArray) SumRange(l, r int) (int, error) {
	if l < 0 || r >= a.Len() || l > r {
		return 0, fmt.Errorf("%w: [%d, %d] of %d", ErrRangeOutOfBounds, l, r, a.Len())
	}

	return a.prefix[r+1] - a.prefix[l], nil
}

// NumMatrix answers inclusive rectangle-sum queries over a fixed matrix.
type NumMatrix struct {
	rows, cols int
	prefix     [][]int // prefix[i][j] = sum of matrix[:i][:j]
}

// NewNumMatrix builds the 2-D prefix table in O(rows*cols).
func NewNumMatrix(matrix [][]int) (*NumMatrix, error) {
	rows := len(matrix)
	cols := 0
	if rows > 0 {
		cols = len(matrix[0])
	}
	prefix := make([][]int, rows+1)
	prefix[0] = make([]int, cols+1)
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
		prefix[i+1] = make([]int, cols+1)
		for j, v := range row {
			prefix[i+1][j+1] = prefix[i][j+1] + prefix[i+1][j] - prefix[i][j] + v
		}
	}

	return &NumMatrix{rows: rows, cols: cols, prefix: prefix}, nil
}

// SumRegion returns the sum of the rectangle with corners (r1, c1) and
// (r2, c2), both inclusive.
func (m *NumMatrix) SumRegion(r1, c1, r2, c2 int) (int, error) {
	if r1 < 0 || c1 < 0 || r2 >= m.rows || c2 >= m.cols || r1 > r2 || c1 > c2 {
		return 0, fmt.Errorf("%w: (%d,%d)-(%d,%d) in %dx%d",
			ErrRangeOutOfBounds, r1, c1, r2, c2, m.rows, m.cols)
	}
	p := m.prefix

	return p[r2+1][c2+1] - p[r1][c2+1] - p[r2+1][c1] + p[r1][c1], nil
}
