// Package schema validates dataset entries against a JSON Schema.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violation describes a single schema violation within an entry.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("at `%s`: %s", v.Path, v.Message)
}

// Validator checks decoded entries against a compiled draft 7 schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile loads and compiles a schema file.
func Compile(path string) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	sch, err := c.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("schema.Compile: %w", err)
	}
	return &Validator{schema: sch}, nil
}

// CompileString compiles a schema from source text under the given name.
func CompileString(name, doc string) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(name, strings.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("schema.CompileString: %w", err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("schema.CompileString: %w", err)
	}
	return &Validator{schema: sch}, nil
}

// Validate checks one decoded entry. A nil slice means the entry
// conforms. Violations are sorted by instance path, then message.
func (v *Validator) Validate(entry any) []Violation {
	err := v.schema.Validate(entry)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Violation{{Path: "root", Message: err.Error()}}
	}

	violations := collect(ve, nil)
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Path != violations[j].Path {
			return violations[i].Path < violations[j].Path
		}
		return violations[i].Message < violations[j].Message
	})
	return violations
}

// collect walks to the leaf causes; interior nodes only restate them.
func collect(ve *jsonschema.ValidationError, out []Violation) []Violation {
	if len(ve.Causes) == 0 {
		return append(out, Violation{
			Path:    dottedPath(ve.InstanceLocation),
			Message: ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		out = collect(cause, out)
	}
	return out
}

// dottedPath converts a JSON pointer like "/tags/0" to "tags.0".
// The document root is reported as "root".
func dottedPath(ptr string) string {
	trimmed := strings.TrimPrefix(ptr, "/")
	if trimmed == "" {
		return "root"
	}
	return strings.ReplaceAll(trimmed, "/", ".")
}
