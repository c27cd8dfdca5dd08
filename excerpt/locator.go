package excerpt

import (
	"github.com/randalmurphal/excerptkit/document"
	"github.com/randalmurphal/excerptkit/helptag"
)

// helptagLocator adapts the helptag engine to the Locator interface.
type helptagLocator struct{}

// NewHelptagLocator returns the default locator: it parses the document
// as help-style text and anchors on the first *tag* occurrence in tree
// iteration order (top to bottom, left to right within a line).
func NewHelptagLocator() Locator {
	return helptagLocator{}
}

func (helptagLocator) Locate(doc *document.Document, tagName string) (int, error) {
	tree := helptag.Parse(doc.Text())
	node, ok := tree.First(helptag.Delimit(tagName))
	if !ok {
		return 0, &TagNotFoundError{Tag: tagName}
	}
	return node.Row, nil
}
