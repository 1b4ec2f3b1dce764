package search

import "golang.org/x/exp/constraints"

// BinarySearch returns the index of target in ascending xs, or -1.
// With duplicates any matching index may be returned.
func BinarySearch[T constraints.Ordered](xs []T, target T) int {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case xs[mid] == target:
			return mid
		case xs[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// LowerBound returns the first index i with xs[i] >= target, or len(xs).
func LowerBound[T constraints.Ordered](xs []T, target T) int {
	return FirstTrue(0, len(xs), func(i int) bool { return xs[i] >= target })
}

// UpperBound returns the first index i with xs[i] > target, or len(xs).
func UpperBound[T constraints.Ordered](xs []T, target T) int {
	return FirstTrue(0, len(xs), func(i int) bool { return xs[i] > target })
}

// SearchRange returns the first and last index of target in ascending xs,
// or {-1, -1} when target is absent.
func SearchRange[T constraints.Ordered](xs []T, target T) [2]int {
	first := LowerBound(xs, target)
	if first == len(xs) || xs[first] != target {
		return [2]int{-1, -1}
	}

	return [2]int{first, UpperBound(xs, target) - 1}
}

// SearchInsert returns the index of target, or the index where it would be
// inserted to keep xs sorted.
func SearchInsert[T constraints.Ordered](xs []T, target T) int {
	return LowerBound(xs, target)
}

// FirstTrue returns the smallest i in [lo, hi) for which pred(i) is true,
// assuming pred is false…false true…true over the range. Returns hi if pred
// is never true.
func FirstTrue(lo, hi int, pred func(int) bool) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// SqrtInt returns ⌊√x⌋ for x ≥ 0 and 0 for negative x.
func SqrtInt(x int) int {
	if x < 2 {
		return max(x, 0)
	}
	// first r with r*r > x, minus one; r ≤ x/2+1 for x ≥ 2.
	return FirstTrue(1, x/2+2, func(r int) bool { return r > x/r }) - 1
}
