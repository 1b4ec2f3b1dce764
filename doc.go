// Package algokit is a catalogue of classic algorithm exercises solved in
// idiomatic Go, one package per technique.
//
// Under the hood the module is organised as:
//
//	numeric/         GCD/LCM, primes, factorial, Fibonacci, Pow, quadratic roots
//	search/          generic binary search, bounds, rotated arrays
//	ds/              ListNode and TreeNode with builders and renderers
//	templates/       reusable drivers: backtracking, memoisation, grid BFS, sliding window
//	arrays/          products, rotation, intervals, matrix walks, strings
//	backtracking/    subsets, permutations, combination sum, N-Queens, word search
//	dp/              stairs, paths, robber, Kadane, coins, LIS, word break, edit distance
//	graphs/          islands, union-find, trees, course schedule, grid BFS, Dijkstra
//	greedy/          jumps, stock profit, gas station, intervals
//	hashing/         two sum, anagrams, consecutive runs, top-k
//	linkedlist/      reversal, merge, cycles, middle, palindrome
//	prefixsum/       running sums, range-sum tables, subarray counts
//	slidingwindow/   substring windows, monotonic deque
//	twopointers/     converging and read/write pointer problems
//	catalog/         problem registry with runnable, diffed example cases
//	cmd/algokit/     CLI to list, show and verify problems
//
// Every solution is a plain function over slices, strings or the ds types.
// Inputs are left untouched unless the function documents in-place work,
// and invalid arguments are reported through sentinel errors that can be
// matched with errors.Is.
package algokit
