package arrays

import "sort"

// MergeIntervals merges all overlapping closed intervals and returns them
// sorted by start. Touching intervals ([1,4] and [4,5]) are merged.
// The input slice is not reordered.
//
// Time: O(n log n). Memory: O(n).
func MergeIntervals(intervals [][2]int) [][2]int {
	if len(intervals) == 0 {
		return nil
	}
	sorted := append([][2]int(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	merged := [][2]int{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv[0] <= last[1] {
			last[1] = max(last[1], iv[1])
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// InsertInterval inserts iv into intervals, which must be sorted by start and
// non-overlapping, merging where necessary. Time: O(n).
func InsertInterval(intervals [][2]int, iv [2]int) [][2]int {
	out := make([][2]int, 0, len(intervals)+1)
	i := 0
	for ; i < len(intervals) && intervals[i][1] < iv[0]; i++ {
		out = append(out, intervals[i])
	}
	for ; i < len(intervals) && intervals[i][0] <= iv[1]; i++ {
		iv[0] = min(iv[0], intervals[i][0])
		iv[1] = max(iv[1], intervals[i][1])
	}
	out = append(out, iv)

	return append(out, intervals[i:]...)
}
