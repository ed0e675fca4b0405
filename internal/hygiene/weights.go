// Package hygiene aggregates validator results into a deterministic
// hygiene score, rating, and penalty breakdown.
package hygiene

// DefaultSeverityWeights returns the default penalty table.
// The map is freshly allocated on every call so callers can never
// mutate the defaults.
func DefaultSeverityWeights() map[string]int {
	return map[string]int{
		"critical": 50,
		"high":     25,
		"medium":   10,
		"low":      5,
		"info":     0,
	}
}

const (
	// CriticalSeverity is the label whose presence excludes the clean
	// rating regardless of score.
	CriticalSeverity = "critical"

	// UnknownSeverityWeight is the penalty for a severity label absent
	// from the merged weight table. Fixed; not derived from the table.
	UnknownSeverityWeight = 10

	// MaxScore is the best possible hygiene score.
	MaxScore = 100

	cleanThreshold          = 90
	needsAttentionThreshold = 60
)

// MergeWeights overlays overrides onto the default table.
// Override wins per key; untouched defaults survive.
func MergeWeights(overrides map[string]int) map[string]int {
	weights := DefaultSeverityWeights()
	for severity, weight := range overrides {
		weights[severity] = weight
	}
	return weights
}
