package numeric

import "errors"

var (
	// ErrNegativeInput indicates a negative argument where only n ≥ 0 is defined.
	ErrNegativeInput = errors.New("numeric: input must be non-negative")
	// ErrOverflow indicates the exact result does not fit into uint64.
	ErrOverflow = errors.New("numeric: result overflows uint64")
	// ErrDegenerate indicates an equation with both a and b equal to zero.
	ErrDegenerate = errors.New("numeric: degenerate equation (a == 0 and b == 0)")
	// ErrNegativeExponent indicates Pow was called with a negative exponent.
	ErrNegativeExponent = errors.New("numeric: exponent must be non-negative")
)

// maxFactorialN is the largest n whose factorial fits into uint64 (20! ≈ 2.43e18).
const maxFactorialN = 20

// maxFibonacciN is the largest n whose Fibonacci number fits into uint64.
const maxFibonacciN = 93
