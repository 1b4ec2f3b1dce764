// Package slidingwindow solves contiguous-range problems with two indices
// that only move forward, so every element enters and leaves the window at
// most once.
//
// What:
//
//   - Variable windows: LengthOfLongestSubstring, MinSubArrayLen,
//     CharacterReplacement, MinWindow.
//   - Fixed windows: MaxSlidingWindow (monotonic deque), FindAnagrams,
//     ContainsNearbyDuplicate, FindMaxAverage.
//
// Several solutions drive templates.Window; the others inline the loop when
// they must record a result before shrinking.
//
// Complexity: O(n) time for every function; memory is bounded by the window
// or the alphabet.
//
// Strings are processed as bytes except LengthOfLongestSubstring, which
// counts runes.
//
// Errors:
//
//   - ErrInvalidWindow: a fixed window size k < 1 or k > len(nums).
package slidingwindow
