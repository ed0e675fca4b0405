// Package dataset handles reading, hashing, and line-numbering JSONL
// dataset files.
package dataset

import (
	"bufio"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lines longer than this abort the read rather than silently truncating.
const maxLineBytes = 4 * 1024 * 1024

// Entry is one parsed dataset record with its 1-based line number.
type Entry struct {
	Line  int
	Value any
}

// LineError records a line that could not be parsed as JSON. These are
// diagnostics for the reporting layer; they never become result items.
type LineError struct {
	Line   int
	Reason string
}

// Dataset holds a loaded JSONL file with its content and metadata.
type Dataset struct {
	FilePath  string
	Hash      string
	Entries   []Entry
	Malformed []LineError
}

// Load reads a JSONL dataset file and computes its SHA-256 hash.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	defer f.Close()

	ds, err := Read(f, path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	return ds, nil
}

// Read parses JSONL from r, naming the dataset after name. Blank lines
// are skipped; lines that fail to parse are recorded in Malformed.
func Read(r io.Reader, name string) (*Dataset, error) {
	ds := &Dataset{FilePath: name}
	h := sha256.New()

	scanner := bufio.NewScanner(io.TeeReader(r, h))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			ds.Malformed = append(ds.Malformed, LineError{
				Line:   line,
				Reason: fmt.Sprintf("malformed JSON: %v", err),
			})
			continue
		}
		ds.Entries = append(ds.Entries, Entry{Line: line, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset.Read: %w", err)
	}

	ds.Hash = fmt.Sprintf("sha256:%x", h.Sum(nil))
	return ds, nil
}
