package numeric

import (
	"math"
	"sort"
)

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0 in ascending order.
//
//   - a == 0, b != 0: the single root of the linear equation b·x + c = 0.
//   - a == 0, b == 0: ErrDegenerate.
//   - discriminant < 0: no real roots, an empty slice and nil error.
//   - discriminant == 0: the double root is reported once.
//
// The larger-magnitude root is computed first and the other is derived from
// Vieta's formula (x1·x2 = c/a) to avoid cancellation when b² ≫ 4ac.
func SolveQuadratic(a, b, c float64) ([]float64, error) {
	if a == 0 {
		if b == 0 {
			return nil, ErrDegenerate
		}
		return []float64{-c / b}, nil
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return []float64{}, nil
	case disc == 0:
		return []float64{-b / (2 * a)}, nil
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	roots := []float64{q / a, c / q}
	sort.Float64s(roots)

	return roots, nil
}
