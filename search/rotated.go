package search

// SearchRotated finds target in an ascending slice of distinct values that
// was rotated at an unknown pivot, e.g. [4 5 6 7 0 1 2]. Returns -1 if absent.
func SearchRotated(xs []int, target int) int {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if xs[mid] == target {
			return mid
		}
		if xs[lo] <= xs[mid] {
			// left half [lo, mid] is sorted
			if xs[lo] <= target && target < xs[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			// right half [mid, hi] is sorted
			if xs[mid] < target && target <= xs[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}

	return -1
}

// FindMinRotated returns the minimum of a rotated ascending slice of distinct
// values. xs must be non-empty.
func FindMinRotated(xs []int) int {
	lo, hi := 0, len(xs)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if xs[mid] > xs[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return xs[lo]
}
