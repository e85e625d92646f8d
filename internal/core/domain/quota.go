package domain

import "math"

// RequiredClicks converts a target engagement quantity into the total
// click volume to request from the tracker.
func RequiredClicks(targetQuantity int64, coefficient float64) int64 {
	return int64(math.Round(float64(targetQuantity) * coefficient))
}

// SplitClicks divides total clicks across n campaigns. Each campaign gets
// total/n; the first total%n campaigns get one extra unit, so the sum of
// quotas always equals total. Returns nil when n <= 0.
func SplitClicks(total int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	base := total / int64(n)
	rem := total % int64(n)
	quotas := make([]int64, n)
	for i := range quotas {
		quotas[i] = base
		if int64(i) < rem {
			quotas[i]++
		}
	}
	return quotas
}
