// Package prefixsum answers range queries from cumulative sums.
//
// What:
//
//   - RunningSum, PivotIndex: one pass over a running total.
//   - SubarraySum, FindMaxLength: prefix sums combined with a hash map of
//     previously seen totals.
//   - NumArray, NumMatrix: immutable 1-D and 2-D range-sum tables built
//     once in O(n) / O(rows*cols) and queried in O(1).
//
// Errors:
//
//   - ErrRangeOutOfBounds: a query range outside the table or with l > r.
//   - ErrNonRectangular: NewNumMatrix with rows of different lengths.
package prefixsum
