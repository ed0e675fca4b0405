package hygiene

// Aggregate folds validator results into a deterministic Verdict.
// It is a pure function: results and overrides are never mutated, the
// outcome is independent of input order, and every call returns a fresh
// value. overrides, if non-nil, is merged over the default weight table.
func Aggregate(results []any, overrides map[string]int) Verdict {
	weights := MergeWeights(overrides)

	counts := make(map[string]int, len(weights))
	bySeverity := make(map[string]int, len(weights))
	for severity := range weights {
		bySeverity[severity] = 0
	}

	total := 0
	for _, result := range results {
		severity := ExtractSeverity(result)
		weight, ok := weights[severity]
		if !ok {
			weight = UnknownSeverityWeight
		}
		counts[severity]++
		bySeverity[severity] += weight
		total += weight
	}

	score := MaxScore - total
	if score < 0 {
		score = 0
	}

	// Known severities with zero occurrences still report a count.
	for severity := range weights {
		if _, ok := counts[severity]; !ok {
			counts[severity] = 0
		}
	}

	return Verdict{
		HygieneScore:   score,
		Rating:         ratingForScore(score, counts),
		SeverityCounts: counts,
		Penalties: Penalties{
			TotalPenalty:  total,
			BySeverity:    bySeverity,
			Weights:       weights,
			UnknownWeight: UnknownSeverityWeight,
		},
		MaxScore: MaxScore,
	}
}

// ratingForScore converts a hygiene score into a qualitative rating.
// A critical finding excludes clean regardless of score.
func ratingForScore(score int, counts map[string]int) Rating {
	if score >= cleanThreshold && counts[CriticalSeverity] == 0 {
		return RatingClean
	}
	if score >= needsAttentionThreshold {
		return RatingNeedsAttention
	}
	return RatingUnsafe
}
