package document

import (
	"fmt"
	"os"
	"strings"
)

// Document is an immutable, line-addressable view of a text document.
// Line indexes are 1-based, matching natural line numbering. A Document
// never mutates after construction, so a single instance is safe to
// share across goroutines.
type Document struct {
	text  string
	lines []string
}

// New builds a Document from raw text. The original text is retained
// verbatim so full-document pass-through returns it unchanged.
func New(text string) *Document {
	return &Document{
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// FromFile reads path and builds a Document from its contents.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return New(string(data)), nil
}

// Text returns the full raw text.
func (d *Document) Text() string {
	return d.text
}

// LineCount returns the number of lines. An empty document still has
// one (empty) line; emptiness is checked at the excerpt boundary.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the 1-based line i. Panics when i is out of range;
// callers validate indexes at the excerpt boundary.
func (d *Document) Line(i int) string {
	return d.lines[i-1]
}

// Slice joins the inclusive 1-based line range [start, end] with
// newlines. The range is clamped to the document bounds; an inverted
// range yields the empty string.
func (d *Document) Slice(start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(d.lines[start-1:end], "\n")
}
