// Package helptag parses help-style documents for tag anchors.
//
// A tag is a named anchor rendered in the document as a star-delimited
// token, e.g. *quickref*. Parse builds a tree of every tag occurrence;
// Query and First match nodes by exact delimited text, never by
// substring. Node order is deterministic: top to bottom, left to right
// within a line, so "first match" is well defined even when a tag is
// defined more than once.
//
//	tree := helptag.Parse(text)
//	node, ok := tree.First(helptag.Delimit("quickref"))
//	if ok {
//	    // node.Row is the 1-based line of the defining occurrence
//	}
package helptag
