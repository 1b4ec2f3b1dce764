package slidingwindow

import "github.com/katalvlaran/algokit/templates"

// LengthOfLongestSubstring returns the length of the longest run of s with
// no repeated rune. The left edge jumps straight past the previous
// occurrence of a repeated rune instead of shrinking one step at a time.
func LengthOfLongestSubstring(s string) int {
	last := make(map[rune]int)
	best, left := 0, 0
	for right, r := range []rune(s) {
		if i, ok := last[r]; ok && i >= left {
			left = i + 1
		}
		last[r] = right
		best = max(best, right-left+1)
	}

	return best
}

// LengthOfLongestSubstringSet is LengthOfLongestSubstring with a window of
// rune counts that shrinks until the newest rune is unique again.
func LengthOfLongestSubstringSet(s string) int {
	runes := []rune(s)
	count := make(map[rune]int)
	var newest rune
	best := 0
	templates.Window(len(runes),
		func(right int) { newest = runes[right]; count[newest]++ },
		func() bool { return count[newest] > 1 },
		func(left int) { count[runes[left]]-- },
		func(left, right int) { best = max(best, right-left+1) },
	)

	return best
}

// CharacterReplacement returns the longest substring that can be made of a
// single repeated byte after replacing at most k bytes. The window is valid
// while its size minus the count of its most frequent byte is at most k;
// that count is never decreased since only a larger value can improve the
// answer.
func CharacterReplacement(s string, k int) int {
	var count [256]int
	size, top, best := 0, 0, 0
	templates.Window(len(s),
		func(right int) {
			count[s[right]]++
			top = max(top, count[s[right]])
			size++
		},
		func() bool { return size-top > k },
		func(left int) { count[s[left]]--; size-- },
		func(_, _ int) { best = max(best, size) },
	)

	return best
}

// MinWindow returns the shortest substring of s containing every byte of t
// with multiplicity, or "" when there is none. Ties go to the leftmost.
func MinWindow(s, t string) string {
	if len(t) == 0 || len(t) > len(s) {
		return ""
	}
	var need [256]int
	for i := 0; i < len(t); i++ {
		need[t[i]]++
	}
	missing := len(t)
	start, length := 0, len(s)+1
	left := 0
	for right := 0; right < len(s); right++ {
		if need[s[right]] > 0 {
			missing--
		}
		need[s[right]]--
		for missing == 0 {
			if right-left+1 < length {
				start, length = left, right-left+1
			}
			need[s[left]]++
			if need[s[left]] > 0 {
				missing++
			}
			left++
		}
	}
	if length > len(s) {
		return ""
	}

	return s[start : start+length]
}

// FindAnagrams returns, in ascending order, every start index in s of a
// window that is a permutation of p.
func FindAnagrams(s, p string) []int {
	k := len(p)
	if k == 0 || k > len(s) {
		return nil
	}
	var want, have [256]int
	for i := 0; i < k; i++ {
		want[p[i]]++
		have[s[i]]++
	}
	var out []int
	if have == want {
		out = append(out, 0)
	}
	for i := k; i < len(s); i++ {
		have[s[i]]++
		have[s[i-k]]--
		if have == want {
			out = append(out, i-k+1)
		}
	}

	return out
}
