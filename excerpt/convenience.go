package excerpt

import (
	"github.com/randalmurphal/excerptkit/document"
)

// FromText builds a budgeted excerpt of text anchored on tagName using
// the default locator, counter, and limits. Returns the excerpt text
// and whether windowing occurred.
func FromText(text, tagName string) (string, bool, error) {
	ex, err := New().Build(document.New(text), tagName, DefaultOptions())
	if err != nil {
		return "", false, err
	}
	return ex.Text, ex.Truncated, nil
}

// FromFile is FromText for a document loaded from path.
func FromFile(path, tagName string) (string, bool, error) {
	doc, err := document.FromFile(path)
	if err != nil {
		return "", false, err
	}
	ex, err := New().Build(doc, tagName, DefaultOptions())
	if err != nil {
		return "", false, err
	}
	return ex.Text, ex.Truncated, nil
}
