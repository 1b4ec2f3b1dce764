package numeric

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// Signs are ignored; GCD(0, 0) == 0. Euclid runs on the signed values and
// only the result is made non-negative, so the minimum value of a signed T
// works with any non-zero partner. GCD(min, 0) and GCD(min, min) are not
// representable in T and come back negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return absInt(a)
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// Division happens before multiplication to delay overflow.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return absInt(a/GCD(a, b)) * absInt(b)
}

func absInt[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
