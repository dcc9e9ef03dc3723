// Package stats computes the descriptive statistics shown for a filtered
// trip dataset. Missing cells are skipped by every aggregation.
package stats

import (
	"cmp"
	"math"
	"slices"
)

// Popular is the most frequent value of a column. Found is false when the
// column had no values.
type Popular[T cmp.Ordered] struct {
	Value T
	Count int
	Found bool
}

// Mode returns the most frequent value. Ties go to the lowest value.
func Mode[T cmp.Ordered](values []T) Popular[T] {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best Popular[T]
	for v, n := range counts {
		if !best.Found || n > best.Count || (n == best.Count && v < best.Value) {
			best = Popular[T]{Value: v, Count: n, Found: true}
		}
	}
	return best
}

// Count is the number of rows sharing a key.
type Count struct {
	Key string
	N   int
}

// CountBy groups non-empty values and counts them, sorted by key.
func CountBy(values []string) []Count {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
