// Package report defines the serialized output envelope for a check run.
package report

import "github.com/dshills/datacritic/internal/hygiene"

// Report is the top-level output object.
type Report struct {
	Tool        string          `json:"tool"`
	Version     string          `json:"version"`
	Input       Input           `json:"input"`
	Dataset     Summary         `json:"dataset"`
	Verdict     hygiene.Verdict `json:"verdict"`
	Findings    []Finding       `json:"findings"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
}

// Input describes the files and settings used for the check.
type Input struct {
	DatasetFile string `json:"dataset_file"`
	DatasetHash string `json:"dataset_hash"`
	SchemaFile  string `json:"schema_file"`
	Profile     string `json:"profile,omitempty"`
}

// Summary counts the entries examined.
type Summary struct {
	TotalEntries int `json:"total_entries"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
	Malformed    int `json:"malformed"`
}

// Finding is one invalid entry with its schema violations.
type Finding struct {
	Line     int      `json:"line"`
	Label    string   `json:"severity"`
	Messages []string `json:"messages"`
}

// Severity exposes the finding's label to the hygiene aggregator.
func (f Finding) Severity() string { return f.Label }

// Diagnostic reports a line the reader could not parse. Line 0 marks a
// synthetic notice rather than a dataset location.
type Diagnostic struct {
	Line   int    `json:"line,omitempty"`
	Reason string `json:"reason"`
}

// Results converts findings into aggregation inputs.
func Results(findings []Finding) []any {
	out := make([]any, len(findings))
	for i, f := range findings {
		out[i] = f
	}
	return out
}
