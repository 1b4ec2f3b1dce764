// Package twopointers solves array and string problems with two indices
// that walk towards each other or one behind the other.
//
// What:
//
//   - Converging pointers: TwoSumSorted, ThreeSum, MaxArea, IsPalindrome,
//     Trap.
//   - Read/write pointers: MoveZeroes, RemoveDuplicates, SortColors. These
//     rearrange the slice in place.
//
// Complexity: O(n) time and O(1) extra memory, except ThreeSum which sorts a
// copy and runs in O(n²).
package twopointers
