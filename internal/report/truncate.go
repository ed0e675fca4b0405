package report

const (
	DefaultMaxFindings    = 50
	DefaultMaxDiagnostics = 20
)

// Truncate caps the findings and diagnostics listed in the report. The
// verdict is computed from the full result set before truncation, so
// cutting the listing never changes the score. If anything is cut, a
// synthetic diagnostic notes the truncation.
func Truncate(r *Report, maxFindings, maxDiagnostics int) {
	if maxFindings <= 0 {
		maxFindings = DefaultMaxFindings
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	truncated := false

	if len(r.Findings) > maxFindings {
		r.Findings = r.Findings[:maxFindings]
		truncated = true
	}
	if len(r.Diagnostics) > maxDiagnostics {
		r.Diagnostics = r.Diagnostics[:maxDiagnostics]
		truncated = true
	}

	if truncated {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Reason: "listing truncated; re-run with higher limits to see all findings",
		})
	}
}
