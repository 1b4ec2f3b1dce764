package hashing

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidK indicates k is outside 1..(number of distinct values).
var ErrInvalidK = errors.New("hashing: k out of range")

// TwoSum returns the indices [i, j], i < j, of the two numbers adding up to
// target, or nil when there is none. One pass: for each value look up its
// complement among the values seen so far.
//
// Time: O(n). Memory: O(n).
func TwoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, ok := seen[target-v]; ok {
			return []int{i, j}
		}
		seen[v] = j
	}

	return nil
}

// TwoSumBrute is the O(n²) approach checking every pair.
func TwoSumBrute(nums []int, target int) []int {
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				return []int{i, j}
			}
		}
	}

	return nil
}

// ContainsDuplicate reports whether any value appears at least twice.
func ContainsDuplicate(nums []int) bool {
	seen := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}

// IsAnagram reports whether t is a rearrangement of s (rune-wise).
func IsAnagram(s, t string) bool {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	for _, r := range t {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// GroupAnagrams groups words that are anagrams of each other. Groups follow
// the first appearance of their key; words keep their input order.
func GroupAnagrams(words []string) [][]string {
	index := make(map[string]int)
	var groups [][]string
	for _, w := range words {
		key := sortedRunes(w)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], w)
	}

	return groups
}

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })

	return string(r)
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers present in nums. Only run starts (v-1 absent) are expanded, so
// every value is visited O(1) times.
func LongestConsecutive(nums []int) int {
	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}
	best := 0
	for v := range set {
		if _, ok := set[v-1]; ok {
			continue
		}
		length := 1
		for {
			if _, ok := set[v+length]; !ok {
				break
			}
			length++
		}
		best = max(best, length)
	}

	return best
}

// TopKFrequent returns the k most frequent values, most frequent first.
// Ties are broken by first appearance. Bucket sort by frequency.
//
// Time: O(n). Memory: O(n).
func TopKFrequent(nums []int, k int) ([]int, error) {
	counts := make(map[int]int)
	var order []int
	for _, v := range nums {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	if k < 1 || k > len(order) {
		return nil, fmt.Errorf("%w: k=%d with %d distinct values", ErrInvalidK, k, len(order))
	}

	buckets := make([][]int, len(nums)+1)
	for _, v := range order {
		buckets[counts[v]] = append(buckets[counts[v]], v)
	}
	out := make([]int, 0, k)
	for f := len(buckets) - 1; f > 0 && len(out) < k; f-- {
		for _, v := range buckets[f] {
			if len(out) == k {
				break
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// FirstUniqChar returns the byte index of the first non-repeating
// character of s, or -1.
func FirstUniqChar(s string) int {
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	for i := 0; i < len(s); i++ {
		if counts[s[i]] == 1 {
			return i
		}
	}

	return -1
}

// MajorityElement returns the value occurring more than n/2 times, which is
// assumed to exist (Boyer–Moore voting, O(1) memory).
func MajorityElement(nums []int) int {
	candidate, votes := 0, 0
	for _, v := range nums {
		if votes == 0 {
			candidate = v
		}
		if v == candidate {
			votes++
		} else {
			votes--
		}
	}

	return candidate
}
