package twopointers

import (
	"slices"
	"unicode"
)

// TwoSumSorted returns the 1-based positions of the two entries of an
// ascending slice that add up to target, or [0, 0] when there are none.
func TwoSumSorted(numbers []int, target int) [2]int {
	i, j := 0, len(numbers)-1
	for i < j {
		switch sum := numbers[i] + numbers[j]; {
		case sum == target:
			return [2]int{i + 1, j + 1}
		case sum < target:
			i++
		default:
			j--
		}
	}

	return [2]int{}
}

// ThreeSum returns every distinct triplet summing to zero. Each triplet is
// ascending and the list is in lexicographic order. nums is not modified.
func ThreeSum(nums []int) [][3]int {
	s := slices.Clone(nums)
	slices.Sort(s)
	var out [][3]int
	for i := 0; i < len(s)-2 && s[i] <= 0; i++ {
		if i > 0 && s[i] == s[i-1] {
			continue
		}
		lo, hi := i+1, len(s)-1
		for lo < hi {
			switch sum := s[i] + s[lo] + s[hi]; {
			case sum < 0:
				lo++
			case sum > 0:
				hi--
			default:
				out = append(out, [3]int{s[i], s[lo], s[hi]})
				for lo < hi && s[lo] == s[lo+1] {
					lo++
				}
				for lo < hi && s[hi] == s[hi-1] {
					hi--
				}
				lo, hi = lo+1, hi-1
			}
		}
	}

	return out
}

// MaxArea returns the most water a pair of vertical lines can hold. The
// shorter line is always moved since it bounds every narrower container.
func MaxArea(height []int) int {
	best := 0
	i, j := 0, len(height)-1
	for i < j {
		best = max(best, (j-i)*min(height[i], height[j]))
		if height[i] < height[j] {
			i++
		} else {
			j--
		}
	}

	return best
}

// IsPalindrome reports whether s reads the same both ways when only
// letters and digits are kept and case is ignored.
func IsPalindrome(s string) bool {
	r := []rune(s)
	i, j := 0, len(r)-1
	for i < j {
		switch {
		case !alnum(r[i]):
			i++
		case !alnum(r[j]):
			j--
		case unicode.ToLower(r[i]) != unicode.ToLower(r[j]):
			return false
		default:
			i, j = i+1, j-1
		}
	}

	return true
}

func alnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Trap returns how much rain the elevation map holds. The side with the
// lower running maximum is settled first because its level is already
// known.
func Trap(height []int) int {
	water := 0
	i, j := 0, len(height)-1
	leftMax, rightMax := 0, 0
	for i < j {
		if height[i] < height[j] {
			leftMax = max(leftMax, height[i])
			water += leftMax - height[i]
			i++
		} else {
			rightMax = max(rightMax, height[j])
			water += rightMax - height[j]
			j--
		}
	}

	return water
}
