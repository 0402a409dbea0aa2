// Package runner executes batches of string-function cases and records the
// outcome of each as a transcript line.
package runner

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/strfunc/core/strfunc"
	"github.com/FocuswithJustin/strfunc/internal/literal"
)

// Injectable functions for testing.
var (
	osReadFile = os.ReadFile
)

// Case is one operation applied to one argument literal.
type Case struct {
	Op  string  `yaml:"op"`
	Arg *string `yaml:"arg"`
}

// argument returns the literal text; a missing or YAML null arg means null.
func (c Case) argument() string {
	if c.Arg == nil {
		return "null"
	}
	return *c.Arg
}

// Batch is the document stored in a batch file.
type Batch struct {
	Cases []Case `yaml:"cases"`
}

// DecodeBatch reads a YAML batch document.
func DecodeBatch(r io.Reader) (*Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Batch
	if err := dec.Decode(&b); err != nil {
		if err == io.EOF {
			return &b, nil
		}
		return nil, fmt.Errorf("failed to decode batch: %w", err)
	}
	for i, c := range b.Cases {
		if c.Op == "" {
			return nil, fmt.Errorf("case %d: op is required", i+1)
		}
	}
	return &b, nil
}

// LoadBatch reads a YAML batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := osReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	b, err := DecodeBatch(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Run evaluates every case in order. A case whose operation or literal
// cannot be parsed, or whose argument is rejected, becomes a failed entry;
// Run itself never stops early.
func Run(b *Batch) *Transcript {
	t := &Transcript{Entries: make([]Entry, 0, len(b.Cases))}
	for _, c := range b.Cases {
		t.Entries = append(t.Entries, runCase(c))
	}
	return t
}

func runCase(c Case) Entry {
	e := Entry{Op: c.Op, Arg: c.argument()}

	op, err := strfunc.ParseOperation(c.Op)
	if err != nil {
		e.Err = err
		return e
	}
	e.Op = op.String()

	arg, err := literal.Parse(c.argument())
	if err != nil {
		e.Err = err
		return e
	}
	e.Arg = literal.Format(arg)

	result, err := strfunc.Evaluate(op, arg)
	if err != nil {
		e.Err = err
		return e
	}
	e.Result = literal.Format(result)
	return e
}
