package analyzer

import (
	"sort"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/fuzumoe/domsight-api/internal/model"
)

// mean returns the population mean of xs, or 0 for an empty list.
func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(lo.Sum(xs)) / float64(len(xs))
}

// median returns the population median of xs, or 0 for an empty list.
func median(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]int, len(xs))
	copy(sorted, xs)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}

// lengthStats summarizes a list of collected lengths.
func lengthStats(xs []int) model.Metrics {
	if len(xs) == 0 {
		return model.Metrics{
			"count": 0, "min_length": 0, "max_length": 0,
			"avg_length": 0.0, "median_length": 0.0, "total_chars": 0,
		}
	}
	return model.Metrics{
		"count":         len(xs),
		"min_length":    lo.Min(xs),
		"max_length":    lo.Max(xs),
		"avg_length":    mean(xs),
		"median_length": median(xs),
		"total_chars":   lo.Sum(xs),
	}
}

// topN returns the n highest-count entries of freq as a plain map.
// Ties break lexicographically so output is deterministic.
func topN(freq map[string]int, n int) map[string]int {
	keys := lo.Keys(freq)
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		out[k] = freq[k]
	}
	return out
}

// truncate cuts s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
