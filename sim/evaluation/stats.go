package evaluation

import "math"

type intOrFloat64 interface {
	int | int64 | float64
}

// percentile returns the p-th percentile of sorted data, interpolating linearly
// between the two nearest ranks. Returns 0 for empty data.
func percentile[T intOrFloat64](sorted []T, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := p / 100.0 * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if upper >= n {
		return float64(sorted[n-1])
	}
	if lower == upper {
		return float64(sorted[lower])
	}
	return float64(sorted[lower]) + float64(sorted[upper]-sorted[lower])*(rank-float64(lower))
}

// meanStd returns the mean and population standard deviation of xs.
func meanStd[T intOrFloat64](xs []T) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += float64(x)
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		d := float64(x) - mean
		std += d * d
	}
	return mean, math.Sqrt(std / float64(len(xs)))
}
