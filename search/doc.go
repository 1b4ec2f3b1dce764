// Package search implements binary search and its common variants over
// sorted slices and monotone predicates.
//
// Every function assumes its precondition (sorted input, rotated-sorted
// input with distinct values, monotone predicate) and does not verify it.
//
// Complexity: O(log n) time and O(1) memory for every function.
package search
