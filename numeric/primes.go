package numeric

// Sieve returns all primes p with 2 ≤ p ≤ n in ascending order.
// For n < 2 the result is an empty, non-nil slice.
//
// Time: O(n log log n). Memory: O(n).
func Sieve(n int) []int {
	if n < 2 {
		return []int{}
	}
	composite := make([]bool, n+1)
	for i := 2; i*i <= n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	primes := make([]int, 0, n/2)
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}

	return primes
}

// IsPrime reports whether n is prime, testing divisors of the form 6k±1.
func IsPrime(n int) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
