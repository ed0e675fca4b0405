package render

import (
	"strings"
	"testing"

	"github.com/dshills/datacritic/internal/hygiene"
	"github.com/dshills/datacritic/internal/report"
)

func sampleReport() *report.Report {
	findings := []report.Finding{
		{Line: 2, Label: "high", Messages: []string{"at `root`: missing property 'text'"}},
	}
	return &report.Report{
		Tool:    "datacritic",
		Version: "0.1.0",
		Input: report.Input{
			DatasetFile: "sample.jsonl",
			SchemaFile:  "entry.json",
			Profile:     "default",
		},
		Dataset:  report.Summary{TotalEntries: 3, Valid: 2, Invalid: 1, Malformed: 1},
		Verdict:  hygiene.Aggregate(report.Results(findings), nil),
		Findings: findings,
		Diagnostics: []report.Diagnostic{
			{Line: 4, Reason: "malformed JSON: unexpected end of input"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleReport())

	for _, want := range []string{
		"# DataCritic Report",
		"**Rating:** needs_attention",
		"**Hygiene score:** 75 / 100",
		"## Severity Breakdown",
		"| high | 1 | 25 |",
		"### Line 2 [high]",
		"missing property 'text'",
		"## Unparseable Lines",
		"Line 4:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown output missing %q", want)
		}
	}
}

func TestMarkdownNoFindings(t *testing.T) {
	r := sampleReport()
	r.Findings = nil
	r.Diagnostics = nil
	r.Verdict = hygiene.Aggregate(nil, nil)

	out := Markdown(r)
	if !strings.Contains(out, "No schema violations found.") {
		t.Error("expected no-violations message")
	}
	if strings.Contains(out, "## Unparseable Lines") {
		t.Error("unexpected diagnostics section")
	}
}

func TestTerm(t *testing.T) {
	out := Term(sampleReport())

	for _, want := range []string{
		"needs_attention",
		"75 / 100",
		"3 entries: 2 valid, 1 invalid, 1 malformed",
		"high: 1 (penalty 25)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Term output missing %q", want)
		}
	}
	// Zero-count severities stay out of the terminal summary.
	if strings.Contains(out, "info:") {
		t.Error("expected zero-count severities to be omitted")
	}
}

func TestTermNoFindings(t *testing.T) {
	r := sampleReport()
	r.Findings = nil
	r.Verdict = hygiene.Aggregate(nil, nil)

	out := Term(r)
	if !strings.Contains(out, "no findings") {
		t.Error("expected no-findings line")
	}
}
