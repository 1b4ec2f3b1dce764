package twopointers

// MoveZeroes shifts every zero to the end, keeping the order of the
// non-zero values.
func MoveZeroes(nums []int) {
	w := 0
	for r, v := range nums {
		if v != 0 {
			nums[w], nums[r] = nums[r], nums[w]
			w++
		}
	}
}

// RemoveDuplicates compacts an ascending slice so its first k entries are
// the distinct values, and returns k. Entries past k are unspecified.
func RemoveDuplicates(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	k := 1
	for _, v := range nums[1:] {
		if v != nums[k-1] {
			nums[k] = v
			k++
		}
	}

	return k
}

// SortColors sorts a slice of 0s, 1s and 2s in one pass (Dutch national
// flag): [0, lo) holds 0s, [lo, mid) 1s and (hi, n) 2s.
func SortColors(nums []int) {
	lo, mid, hi := 0, 0, len(nums)-1
	for mid <= hi {
		switch nums[mid] {
		case 0:
			nums[lo], nums[mid] = nums[mid], nums[lo]
			lo++
			mid++
		case 1:
			mid++
		default:
			nums[mid], nums[hi] = nums[hi], nums[mid]
			hi--
		}
	}
}
