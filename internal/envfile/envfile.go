// Package envfile parses dotenv-style files. It is shared by the dotenv
// loader (package dotenv) and the CLI (cmd/dotenv) and never touches the
// process environment itself.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineSize is the longest line the scanner accepts.
const MaxLineSize = 1 << 20

// NewScanner returns a line scanner over r that accepts lines up to
// MaxLineSize bytes.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

// Parse reads every line from r and returns the accepted entries in file
// order. Duplicate keys are kept; see Map for last-wins collapsing.
// Blank lines, comments and malformed lines are silently skipped.
func Parse(r io.Reader, opts Options) ([]Entry, error) {
	var entries []Entry
	scanner := NewScanner(r)
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text(), opts); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return entries, err
	}
	return entries, nil
}

// ReadFile parses the dotenv file at path.
func ReadFile(path string, opts Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f, opts)
	if err != nil {
		return entries, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// Map collapses entries into a map; later entries win.
func Map(entries []Entry) map[string]string {
	env := make(map[string]string, len(entries))
	for _, e := range entries {
		env[e.Key] = e.Value
	}
	return env
}
