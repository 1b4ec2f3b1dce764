package numeric

import (
	"fmt"

	"github.com/katalvlaran/algokit/templates"
)

// Factorial returns n! for 0 ≤ n ≤ 20.
// Returns ErrNegativeInput for n < 0 and ErrOverflow for n > 20.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial(%d)", ErrNegativeInput, n)
	}
	if n > maxFactorialN {
		return 0, fmt.Errorf("%w: factorial(%d)", ErrOverflow, n)
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}

	return result, nil
}

// Fibonacci returns F(n) with F(0)=0, F(1)=1, iterating bottom-up in O(1) memory.
// Returns ErrNegativeInput for n < 0 and ErrOverflow for n > 93.
func Fibonacci(n int) (uint64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	var prev, curr uint64 = 0, 1
	if n == 0 {
		return 0, nil
	}
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// FibonacciMemo is the top-down approach: F(n) = F(n-1) + F(n-2) with memoization.
// It yields the same values as Fibonacci using O(n) memory.
func FibonacciMemo(n int) (uint64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	memo := templates.NewMemo(func(self *templates.Memo[int, uint64], k int) uint64 {
		if k < 2 {
			return uint64(k)
		}
		return self.Get(k-1) + self.Get(k-2)
	})

	return memo.Get(n), nil
}

func checkFibonacci(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: fibonacci(%d)", ErrNegativeInput, n)
	}
	if n > maxFibonacciN {
		return fmt.Errorf("%w: fibonacci(%d)", ErrOverflow, n)
	}

	return nil
}

// Pow returns base^exp by repeated squaring. Overflow wraps like int64 arithmetic.
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result, nil
}
