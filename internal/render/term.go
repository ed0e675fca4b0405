package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/datacritic/internal/hygiene"
	"github.com/dshills/datacritic/internal/report"
)

// Terminal styles for the three rating tiers.
var (
	termClean  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	termWarn   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"})
	termUnsafe = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	termDim    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

func ratingStyle(r hygiene.Rating) lipgloss.Style {
	switch r {
	case hygiene.RatingClean:
		return termClean
	case hygiene.RatingNeedsAttention:
		return termWarn
	default:
		return termUnsafe
	}
}

// Term renders a one-screen summary inside a rounded border card.
func Term(r *report.Report) string {
	var body strings.Builder

	rating := ratingStyle(r.Verdict.Rating).Bold(true).Render(string(r.Verdict.Rating))
	fmt.Fprintf(&body, "%s  %d / %d\n", rating, r.Verdict.HygieneScore, r.Verdict.MaxScore)
	body.WriteString(termDim.Render(r.Input.DatasetFile) + "\n\n")

	fmt.Fprintf(&body, "%d entries: %d valid, %d invalid, %d malformed\n",
		r.Dataset.TotalEntries, r.Dataset.Valid, r.Dataset.Invalid, r.Dataset.Malformed)

	observed := false
	for _, severity := range sortedKeys(r.Verdict.SeverityCounts) {
		count := r.Verdict.SeverityCounts[severity]
		if count == 0 {
			continue
		}
		observed = true
		fmt.Fprintf(&body, "  %s: %d (penalty %d)\n",
			severity, count, r.Verdict.Penalties.BySeverity[severity])
	}
	if !observed {
		body.WriteString("  no findings\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(termDim.GetForeground()).
		Padding(0, 2)

	return card.Render(strings.TrimRight(body.String(), "\n")) + "\n"
}
