// Package arrays solves array and string manipulation exercises.
//
// What:
//
//   - ProductExceptSelf: prefix/suffix products without division.
//   - Rotate: right-rotation by k, three approaches (copy, reversal, cyclic).
//   - MergeIntervals, InsertInterval: interval union on sorted starts.
//   - SpiralOrder, RotateImage: matrix walks and in-place 90° rotation.
//   - LongestCommonPrefix, ReverseWords, PlusOne: string and digit helpers.
//
// Functions that mutate their input say so; all others leave it untouched.
package arrays
