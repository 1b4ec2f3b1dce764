// Package numeric collects small number-theory and arithmetic helpers
// shared by the solutions of github.com/katalvlaran/algokit.
//
// What:
//
//   - GCD, LCM: Euclid's algorithm over any integer type.
//   - Sieve, IsPrime: Eratosthenes sieve and 6k±1 trial division.
//   - Factorial, Fibonacci: exact uint64 results with overflow guards.
//   - SolveQuadratic: real roots of a·x² + b·x + c = 0.
//   - Pow: exponentiation by squaring.
//
// Complexity:
//
//   - GCD/LCM:        O(log min(a,b))
//   - Sieve:          O(n log log n) time, O(n) memory
//   - IsPrime:        O(√n)
//   - Factorial:      O(n)
//   - Fibonacci:      O(n) time, O(1) memory (FibonacciMemo: O(n) memory)
//   - SolveQuadratic: O(1)
//   - Pow:            O(log exp)
//
// Errors:
//
//   - ErrNegativeInput: factorial / Fibonacci of a negative number.
//   - ErrOverflow:      result does not fit into uint64.
//   - ErrDegenerate:    quadratic with a == 0 and b == 0.
//   - ErrNegativeExponent: Pow with exp < 0.
package numeric
