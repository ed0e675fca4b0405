// Package render produces Markdown and terminal output from a report.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/datacritic/internal/report"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	b.WriteString("# DataCritic Report\n\n")
	fmt.Fprintf(&b, "**Rating:** %s\n", r.Verdict.Rating)
	fmt.Fprintf(&b, "**Hygiene score:** %d / %d\n", r.Verdict.HygieneScore, r.Verdict.MaxScore)
	fmt.Fprintf(&b, "**Entries:** %d valid, %d invalid, %d malformed\n\n",
		r.Dataset.Valid, r.Dataset.Invalid, r.Dataset.Malformed)

	b.WriteString("## Severity Breakdown\n\n")
	b.WriteString("| Severity | Count | Penalty |\n")
	b.WriteString("|----------|-------|--------|\n")
	for _, severity := range sortedKeys(r.Verdict.SeverityCounts) {
		fmt.Fprintf(&b, "| %s | %d | %d |\n",
			severity, r.Verdict.SeverityCounts[severity], r.Verdict.Penalties.BySeverity[severity])
	}
	fmt.Fprintf(&b, "\n**Total penalty:** %d\n\n", r.Verdict.Penalties.TotalPenalty)

	if len(r.Findings) > 0 {
		b.WriteString("## Findings\n\n")
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "### Line %d [%s]\n\n", f.Line, f.Label)
			for _, m := range f.Messages {
				fmt.Fprintf(&b, "- %s\n", m)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("No schema violations found.\n\n")
	}

	if len(r.Diagnostics) > 0 {
		b.WriteString("## Unparseable Lines\n\n")
		for _, d := range r.Diagnostics {
			if d.Line > 0 {
				fmt.Fprintf(&b, "- Line %d: %s\n", d.Line, d.Reason)
			} else {
				fmt.Fprintf(&b, "- %s\n", d.Reason)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
