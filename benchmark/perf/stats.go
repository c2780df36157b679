package perf

import (
	"sort"
	"time"
)

// summarize sorts samples in place and fills the distribution summary.
func summarize(samples []time.Duration) LatencySummary {
	if len(samples) == 0 {
		return LatencySummary{}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return LatencySummary{
		Sampled: true,
		Min:     samples[0],
		Median:  percentile(samples, 0.50),
		P95:     percentile(samples, 0.95),
		P99:     percentile(samples, 0.99),
		Max:     samples[len(samples)-1],
	}
}

// percentile picks from sorted samples by truncated rank.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
