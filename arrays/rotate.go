package arrays

// Rotate shifts nums right by k steps in place (k may exceed len(nums)).
// It uses the reversal approach.
func Rotate(nums []int, k int) {
	RotateReverse(nums, k)
}

// RotateCopy rotates through an auxiliary slice. Time O(n), memory O(n).
func RotateCopy(nums []int, k int) {
	n := len(nums)
	if n == 0 {
		return
	}
	tmp := make([]int, n)
	for i, v := range nums {
		tmp[(i+k)%n] = v
	}
	copy(nums, tmp)
}

// RotateReverse reverses the whole slice, then the first k and the remaining
// n-k elements. Time O(n), memory O(1).
func RotateReverse(nums []int, k int) {
	n := len(nums)
	if n == 0 {
		return
	}
	k %= n
	reverse(nums)
	reverse(nums[:k])
	reverse(nums[k:])
}

// RotateCyclic moves every element directly to its final slot, following
// gcd(n, k) cycles. Time O(n), memory O(1).
func RotateCyclic(nums []int, k int) {
	n := len(nums)
	if n == 0 {
		return
	}
	k %= n
	moved := 0
	for start := 0; moved < n; start++ {
		cur, carry := start, nums[start]
		for {
			next := (cur + k) % n
			nums[next], carry = carry, nums[next]
			cur = next
			moved++
			if cur == start {
				break
			}
		}
	}
}

func reverse(xs []int) {
	for l, r := 0, len(xs)-1; l < r; l, r = l+1, r-1 {
		xs[l], xs[r] = xs[r], xs[l]
	}
}
