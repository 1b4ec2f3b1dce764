// Package hashing solves exercises whose core step is a hash-map lookup,
// grouping or count: TwoSum, GroupAnagrams, ContainsDuplicate, IsAnagram,
// LongestConsecutive, TopKFrequent, FirstUniqChar and MajorityElement.
//
// Results that come out of a map are always put in a deterministic order
// (first appearance in the input) so that they can be compared in tests.
//
// Errors:
//
//   - ErrInvalidK: TopKFrequent with k < 1 or k larger than the number of
//     distinct values.
package hashing
