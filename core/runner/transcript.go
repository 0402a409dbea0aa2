package runner

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

// Entry is the outcome of one case.
type Entry struct {
	Op     string
	Arg    string
	Result string
	Err    error
}

// Failed reports whether the case produced an error instead of a value.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// String renders the transcript line: OP(arg) = result, or OP(arg) ! error.
func (e Entry) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%s) ! %s", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s(%s) = %s", e.Op, e.Arg, e.Result)
}

// Transcript is the ordered record of a batch run.
type Transcript struct {
	Entries []Entry
}

// Failures counts failed entries.
func (t *Transcript) Failures() int {
	n := 0
	for _, e := range t.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

// Bytes returns the transcript text, one newline-terminated line per entry.
func (t *Transcript) Bytes() []byte {
	var sb strings.Builder
	for _, e := range t.Entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// WriteTo writes the transcript text to w.
func (t *Transcript) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, e := range t.Entries {
		n, err := bw.WriteString(e.String() + "\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write transcript: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("failed to write transcript: %w", err)
	}
	return total, nil
}

// Digest returns the BLAKE3-256 hex digest of the transcript text.
func (t *Transcript) Digest() string {
	sum := blake3.Sum256(t.Bytes())
	return hex.EncodeToString(sum[:])
}

// GoldenMismatchError reports a transcript whose digest differs from the
// expected golden value.
type GoldenMismatchError struct {
	Expected string
	Actual   string
}

func (e *GoldenMismatchError) Error() string {
	return fmt.Sprintf("transcript digest mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// CheckGolden compares the transcript digest with a golden hex digest.
// Case and surrounding whitespace in golden are ignored.
func (t *Transcript) CheckGolden(golden string) error {
	expected := strings.ToLower(strings.TrimSpace(golden))
	actual := t.Digest()
	if expected != actual {
		return &GoldenMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}
