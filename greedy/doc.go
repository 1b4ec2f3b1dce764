// Package greedy solves exercises where a locally optimal choice at every
// step yields a global optimum: reachability jumps, stock trading, circular
// fuel routes, cookie assignment, string partitioning and interval
// scheduling.
//
// Every function runs in O(n) or O(n log n) time and never modifies its
// arguments.
package greedy
