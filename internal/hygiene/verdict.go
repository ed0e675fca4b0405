package hygiene

// Rating is the qualitative tier derived from a hygiene score.
type Rating string

const (
	RatingClean          Rating = "clean"
	RatingNeedsAttention Rating = "needs_attention"
	RatingUnsafe         Rating = "unsafe"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingClean, RatingNeedsAttention, RatingUnsafe:
		return true
	}
	return false
}

// Verdict is the complete output of one aggregation call.
type Verdict struct {
	HygieneScore   int            `json:"hygiene_score"`
	Rating         Rating         `json:"rating"`
	SeverityCounts map[string]int `json:"severity_counts"`
	Penalties      Penalties      `json:"penalties"`
	MaxScore       int            `json:"max_score"`
}

// Penalties explains how the score was reached. Weights echoes only the
// merged table; BySeverity may carry labels (e.g. an unknown severity)
// that were penalized at UnknownWeight without appearing in Weights.
type Penalties struct {
	TotalPenalty  int            `json:"total_penalty"`
	BySeverity    map[string]int `json:"by_severity"`
	Weights       map[string]int `json:"weights"`
	UnknownWeight int            `json:"unknown_weight"`
}
