package pipeline

import "math"

// Percentile returns the p-quantile (p in [0, 1]) of sorted values using
// linear interpolation between order statistics, the conventional
// spreadsheet/dataframe definition (h = p*(n-1), interpolate neighbors).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}

	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
