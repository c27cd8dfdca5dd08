package helptag

import (
	"regexp"
	"strings"
)

// Node is a tag occurrence in a parsed document.
type Node struct {
	// Text is the delimited form as it appears in the document, e.g. "*opts*".
	Text string

	// Name is the tag name without delimiters, e.g. "opts".
	Name string

	// Row is the 1-based line index of the occurrence.
	Row int

	// Col is the 1-based column of the opening delimiter.
	Col int
}

// Tree is the parse result: every tag node in the document, in
// iteration order. Iteration order is deterministic pre-order: top to
// bottom, left to right within a line.
type Tree struct {
	nodes []Node
}

// nodePattern matches a help-style tag definition: a star-delimited
// identifier with no whitespace, stars, or bars inside.
var nodePattern = regexp.MustCompile(`\*([^*\s|]+)\*`)

// Parse scans text for help-style tag definitions and returns the
// resulting tree. Parse never fails; a document with no tags yields an
// empty tree.
func Parse(text string) *Tree {
	var nodes []Node

	for row, line := range strings.Split(text, "\n") {
		for _, match := range nodePattern.FindAllStringSubmatchIndex(line, -1) {
			nodes = append(nodes, Node{
				Text: line[match[0]:match[1]],
				Name: line[match[2]:match[3]],
				Row:  row + 1,
				Col:  match[0] + 1,
			})
		}
	}

	return &Tree{nodes: nodes}
}

// Nodes returns all tag nodes in iteration order.
func (t *Tree) Nodes() []Node {
	result := make([]Node, len(t.nodes))
	copy(result, t.nodes)
	return result
}

// Len returns the number of tag nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Query returns the nodes whose delimited text equals pattern exactly.
// Equality, not substring: querying "*opt*" does not match "*opts*".
func (t *Tree) Query(pattern string) []Node {
	var matches []Node
	for _, n := range t.nodes {
		if n.Text == pattern {
			matches = append(matches, n)
		}
	}
	return matches
}

// First returns the first node in iteration order whose delimited text
// equals pattern exactly. Returns false if no node matches.
func (t *Tree) First(pattern string) (Node, bool) {
	for _, n := range t.nodes {
		if n.Text == pattern {
			return n, true
		}
	}
	return Node{}, false
}

// Delimit wraps a tag name in its markup delimiters, producing the
// exact text a defining occurrence renders as.
func Delimit(name string) string {
	return "*" + name + "*"
}
