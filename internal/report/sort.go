package report

import "sort"

// severityRank gives a sort key (lower = more severe). Labels outside
// the default table sort last.
func severityRank(label string) int {
	switch label {
	case "critical":
		return 0
	case "high":
		return 1
	case "medium":
		return 2
	case "low":
		return 3
	case "info":
		return 4
	}
	return 5
}

// SortFindings sorts findings by severity (worst first), then by line.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		ri := severityRank(findings[i].Label)
		rj := severityRank(findings[j].Label)
		if ri != rj {
			return ri < rj
		}
		return findings[i].Line < findings[j].Line
	})
}
