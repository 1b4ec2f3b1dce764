package arrays

// ProductExceptSelf returns out where out[i] is the product of every element
// of nums except nums[i], without using division.
//
// Pass 1 stores prefix products in out; pass 2 multiplies in a running suffix.
// Time: O(n). Memory: O(1) besides the output.
func ProductExceptSelf(nums []int) []int {
	n := len(nums)
	out := make([]int, n)
	prefix := 1
	for i := 0; i < n; i++ {
		out[i] = prefix
		prefix *= nums[i]
	}
	suffix := 1
	for i := n - 1; i >= 0; i-- {
		out[i] *= suffix
		suffix *= nums[i]
	}

	return out
}

// PlusOne adds one to a non-negative integer stored as most-significant-first
// decimal digits and returns the new digit slice. digits is not modified.
func PlusOne(digits []int) []int {
	out := append([]int(nil), digits...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 9 {
			out[i]++
			return out
		}
		out[i] = 0
	}

	return append([]int{1}, out...)
}
