package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/datacritic/internal/dataset"
	"github.com/dshills/datacritic/internal/hygiene"
	"github.com/dshills/datacritic/internal/profile"
	"github.com/dshills/datacritic/internal/render"
	"github.com/dshills/datacritic/internal/report"
	"github.com/dshills/datacritic/internal/schema"
)

type checkFlags struct {
	schemaPath        string
	format            string
	out               string
	profileName       string
	weightsPath       string
	violationSeverity string
	maxFindings       int
	maxDiagnostics    int
	failOn            string
	failUnder         int
	verbose           bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <dataset.jsonl>",
		Short: "Validate a dataset and produce a hygiene report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.schemaPath, "schema", "", "Entry schema file (JSON Schema draft 7)")
	flags.StringVar(&f.format, "format", defaultFormat(), "Output format: json, md, or text")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.profileName, "profile", "default", "Built-in weight profile name")
	flags.StringVar(&f.weightsPath, "weights", "", "YAML file of severity weight overrides (merged last)")
	flags.StringVar(&f.violationSeverity, "violation-severity", "", "Severity assigned to schema violations (overrides profile)")
	flags.IntVar(&f.maxFindings, "max-findings", report.DefaultMaxFindings, "Maximum findings listed in the report")
	flags.IntVar(&f.maxDiagnostics, "max-diagnostics", report.DefaultMaxDiagnostics, "Maximum unparseable-line diagnostics listed")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if the rating is at least this bad: needs_attention or unsafe")
	flags.IntVar(&f.failUnder, "fail-under", -1, "Exit non-zero if the hygiene score is below this value")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// defaultFormat picks the colorized text summary for interactive
// terminals and json everywhere else (pipes, CI).
func defaultFormat() string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "text"
	}
	return "json"
}

func runCheck(datasetPath string, f *checkFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	if f.schemaPath == "" {
		return exitError(3, "--schema is required")
	}

	// 1. Load dataset
	verbose("Loading dataset: %s", datasetPath)
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return exitError(3, "failed to load dataset: %v", err)
	}
	verbose("Parsed %d entries (%d malformed lines)", len(ds.Entries), len(ds.Malformed))

	// 2. Compile entry schema
	verbose("Compiling schema: %s", f.schemaPath)
	validator, err := schema.Compile(f.schemaPath)
	if err != nil {
		return exitError(3, "failed to compile schema: %v", err)
	}

	// 3. Load profile and weight overrides
	verbose("Loading profile: %s", f.profileName)
	prof, err := profile.LoadBuiltin(f.profileName)
	if err != nil {
		return exitError(3, "failed to load profile: %v", err)
	}
	overrides := make(map[string]int, len(prof.SeverityWeights))
	for severity, weight := range prof.SeverityWeights {
		overrides[severity] = weight
	}
	if f.weightsPath != "" {
		verbose("Loading weight overrides: %s", f.weightsPath)
		userProf, err := profile.LoadFile(f.weightsPath)
		if err != nil {
			return exitError(3, "failed to load weights: %v", err)
		}
		for severity, weight := range userProf.SeverityWeights {
			overrides[severity] = weight
		}
	}
	violationSeverity := prof.ViolationSeverity
	if f.violationSeverity != "" {
		violationSeverity = f.violationSeverity
	}

	// 4. Validate entries; one finding per invalid entry
	var findings []report.Finding
	valid := 0
	for _, entry := range ds.Entries {
		violations := validator.Validate(entry.Value)
		if len(violations) == 0 {
			valid++
			continue
		}
		messages := make([]string, len(violations))
		for i, v := range violations {
			messages[i] = v.String()
		}
		findings = append(findings, report.Finding{
			Line:     entry.Line,
			Label:    violationSeverity,
			Messages: messages,
		})
	}
	verbose("Validated %d entries: %d valid, %d invalid", len(ds.Entries), valid, len(findings))

	// 5. Aggregate
	verdict := hygiene.Aggregate(report.Results(findings), overrides)
	verbose("Hygiene score %d, rating %s", verdict.HygieneScore, verdict.Rating)

	// 6. Assemble report
	rep := &report.Report{
		Tool:    "datacritic",
		Version: version,
		Input: report.Input{
			DatasetFile: filepath.Base(datasetPath),
			DatasetHash: ds.Hash,
			SchemaFile:  filepath.Base(f.schemaPath),
			Profile:     f.profileName,
		},
		Dataset: report.Summary{
			TotalEntries: len(ds.Entries),
			Valid:        valid,
			Invalid:      len(findings),
			Malformed:    len(ds.Malformed),
		},
		Verdict:  verdict,
		Findings: findings,
	}
	for _, le := range ds.Malformed {
		rep.Diagnostics = append(rep.Diagnostics, report.Diagnostic{Line: le.Line, Reason: le.Reason})
	}
	report.SortFindings(rep.Findings)
	report.Truncate(rep, f.maxFindings, f.maxDiagnostics)

	// 7. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	case "text":
		output = render.Term(rep)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	// 8. Exit code gates
	if f.failUnder >= 0 && verdict.HygieneScore < f.failUnder {
		return exitError(2, "hygiene score %d is below fail threshold %d", verdict.HygieneScore, f.failUnder)
	}
	if f.failOn != "" {
		meets, err := ratingMeetsThreshold(verdict.Rating, f.failOn)
		if err != nil {
			return exitError(3, "%v", err)
		}
		if meets {
			return exitError(2, "rating %s meets fail threshold %s", verdict.Rating, f.failOn)
		}
	}

	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// ratingMeetsThreshold reports whether the rating is at least as bad as
// the failOn threshold.
func ratingMeetsThreshold(rating hygiene.Rating, failOn string) (bool, error) {
	ratingLevel := map[hygiene.Rating]int{
		hygiene.RatingClean:          0,
		hygiene.RatingNeedsAttention: 1,
		hygiene.RatingUnsafe:         2,
	}
	thresholdLevel := map[string]int{
		"clean":           0,
		"needs_attention": 1,
		"needs-attention": 1,
		"unsafe":          2,
	}

	tl, ok := thresholdLevel[strings.ToLower(failOn)]
	if !ok {
		return false, fmt.Errorf("unrecognized fail-on value: %q", failOn)
	}
	return ratingLevel[rating] >= tl, nil
}
