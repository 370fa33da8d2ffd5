// Package snippet holds the line buffer shared by the roster and draft
// extractors. Lines are accumulated until a grammar rule recognizes the whole
// buffer (or its leading lines), at which point the buffer is reset.
package snippet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExcerptLines is how many buffered lines a GrammarError shows.
const ExcerptLines = 3

// Buffer accumulates the non-blank lines of a block that has not been
// recognized yet.
type Buffer struct {
	lines []string
}

func (b *Buffer) Append(line string) {
	b.lines = append(b.lines, line)
}

func (b *Buffer) Reset() {
	b.lines = nil
}

// Lines returns the buffered lines. The slice must not be modified.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Blank reports whether the buffer holds no non-whitespace text.
func (b *Buffer) Blank() bool {
	for _, l := range b.lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// Leftover returns a GrammarError for doc when unrecognized text is still
// buffered, nil otherwise.
func (b *Buffer) Leftover(doc string) error {
	if b.Blank() {
		return nil
	}
	return NewGrammarError(doc, "", b.lines)
}

// NewGrammarError builds a GrammarError showing at most ExcerptLines of lines.
func NewGrammarError(doc, reason string, lines []string) *GrammarError {
	n := len(lines)
	if n > ExcerptLines {
		n = ExcerptLines
	}
	excerpt := make([]string, n)
	copy(excerpt, lines[:n])
	return &GrammarError{Document: doc, Excerpt: excerpt, Reason: reason}
}

// GrammarError reports text at the end of a document that no rule matched.
type GrammarError struct {
	Document string
	Excerpt  []string
	Reason   string
}

func (e *GrammarError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "some text not caught"
	}
	return fmt.Sprintf("%s: %s, started at:\n------\n%s\n------", e.Document, reason, strings.Join(e.Excerpt, "\n"))
}

// Scan calls fn for every non-blank line of r with its line terminator
// (\n or \r\n) removed. Blank lines are never passed to fn.
func Scan(r io.Reader, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
