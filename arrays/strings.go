package arrays

import "strings"

// LongestCommonPrefix returns the longest prefix shared by every string,
// scanning column by column. Empty input yields "".
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	first := strs[0]
	for i := 0; i < len(first); i++ {
		for _, s := range strs[1:] {
			if i == len(s) || s[i] != first[i] {
				return first[:i]
			}
		}
	}

	return first
}

// ReverseWords reverses the order of whitespace-separated words and joins
// them with single spaces, dropping leading and trailing whitespace.
func ReverseWords(s string) string {
	words := strings.Fields(s)
	for l, r := 0, len(words)-1; l < r; l, r = l+1, r-1 {
		words[l], words[r] = words[r], words[l]
	}

	return strings.Join(words, " ")
}
