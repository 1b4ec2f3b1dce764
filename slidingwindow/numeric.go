package slidingwindow

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow indicates a fixed window size outside [1, len(nums)].
var ErrInvalidWindow = errors.New("slidingwindow: invalid window size")

func checkWindow(n, k int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d for %d elements", ErrInvalidWindow, k, n)
	}

	return nil
}

// MinSubArrayLen returns the minimal length of a contiguous subarray whose
// sum is at least target, or 0 if there is none. nums must be positive.
// A target ≤ 0 is met by any single element.
func MinSubArrayLen(target int, nums []int) int {
	best := len(nums) + 1
	sum, left := 0, 0
	for right, v := range nums {
		sum += v
		for left <= right && sum >= target {
			best = min(best, right-left+1)
			sum -= nums[left]
			left++
		}
	}
	if best > len(nums) {
		return 0
	}

	return best
}

// MaxSlidingWindow returns the maximum of every window of size k. The deque
// holds indices whose values are strictly decreasing, so its front is the
// current maximum.
func MaxSlidingWindow(nums []int, k int) ([]int, error) {
	if err := checkWindow(len(nums), k); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(nums)-k+1)
	deque := make([]int, 0, k)
	for i, v := range nums {
		if len(deque) > 0 && deque[0] <= i-k {
			deque = deque[1:]
		}
		for len(deque) > 0 && nums[deque[len(deque)-1]] <= v {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, i)
		if i >= k-1 {
			out = append(out, nums[deque[0]])
		}
	}

	return out, nil
}

// ContainsNearbyDuplicate reports whether two equal values sit at most k
// indices apart. The set holds the last k values only.
func ContainsNearbyDuplicate(nums []int, k int) bool {
	if k <= 0 {
		return false
	}
	window := make(map[int]struct{}, k)
	for i, v := range nums {
		if _, ok := window[v]; ok {
			return true
		}
		window[v] = struct{}{}
		if i >= k {
			delete(window, nums[i-k])
		}
	}

	return false
}

// FindMaxAverage returns the largest mean of any k consecutive values.
func FindMaxAverage(nums []int, k int) (float64, error) {
	if err := checkWindow(len(nums), k); err != nil {
		return 0, err
	}
	sum := 0
	for _, v := range nums[:k] {
		sum += v
	}
	best := sum
	for i := k; i < len(nums); i++ {
		sum += nums[i] - nums[i-k]
		best = max(best, sum)
	}

	return float64(best) / float64(k), nil
}
