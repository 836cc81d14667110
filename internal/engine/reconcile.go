package engine

import (
	"math"
	"sort"
)

// Reconcile converts four non-negative risk-level counts into integer
// percentages that sum to exactly 100, using the largest-remainder method:
// floor each raw percentage, then hand the leftover points to the entries
// with the largest fractional parts, ties going to the earlier index. If the
// remainder exceeds the number of entries the distribution wraps around, so
// the sum invariant holds for any non-negative input. A zero total yields all
// zeros.
func Reconcile(counts [4]int) [4]int {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return [4]int{}
	}

	var out [4]int
	var frac [4]float64
	base := 0
	for i, c := range counts {
		raw := float64(c) * 100 / float64(total)
		out[i] = int(math.Floor(raw))
		frac[i] = raw - math.Floor(raw)
		base += out[i]
	}

	order := [4]int{0, 1, 2, 3}
	sort.SliceStable(order[:], func(i, j int) bool {
		return frac[order[i]] > frac[order[j]]
	})

	remainder := 100 - base
	for k := 0; k < remainder; k++ {
		out[order[k%len(order)]]++
	}
	return out
}
