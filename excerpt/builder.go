package excerpt

import (
	"fmt"

	"github.com/randalmurphal/excerptkit/document"
	"github.com/randalmurphal/excerptkit/tokens"
	"github.com/randalmurphal/excerptkit/window"
)

// DefaultMaxTokens is the default hard token budget for an excerpt.
const DefaultMaxTokens = 2048

// DefaultMaxLines is the default maximum line span of a context window.
const DefaultMaxLines = 128

// Truncation markers rendered around a windowed excerpt.
const (
	leadingMarker  = "...\n"
	trailingMarker = "\n..."
)

// Options bound the size of a built excerpt.
type Options struct {
	// MaxTokens is the hard token budget. The returned excerpt always
	// estimates strictly below it.
	MaxTokens int

	// MaxLines is the maximum line span of the context window.
	MaxLines int
}

// DefaultOptions returns the default limits: 2048 tokens, 128 lines.
func DefaultOptions() Options {
	return Options{MaxTokens: DefaultMaxTokens, MaxLines: DefaultMaxLines}
}

// Excerpt is the result of a build: the final text, whether windowing
// occurred, the selected window when it did, and the measured estimate.
type Excerpt struct {
	// Text is the excerpt, including any truncation markers. When
	// Truncated is false it is the document's full text verbatim.
	Text string

	// Truncated reports whether windowing occurred.
	Truncated bool

	// Window is the selected line range; zero when Truncated is false.
	Window window.Window

	// Tokens is the counter's estimate for Text.
	Tokens int
}

// Locator finds the 1-based line of a tag's defining occurrence in a
// document. Implementations signal an unfound tag with an error that
// matches ErrTagNotFound, so no absent anchor ever reaches window
// arithmetic.
type Locator interface {
	Locate(doc *document.Document, tagName string) (int, error)
}

// Builder assembles token-budgeted excerpts anchored on a tag. It
// holds no per-request state; a single Builder is safe for concurrent
// use as long as its locator and counter are.
type Builder struct {
	locator Locator
	counter tokens.Counter
}

// New creates a builder with the default collaborators: the helptag
// locator and the estimating token counter.
func New() *Builder {
	return &Builder{
		locator: NewHelptagLocator(),
		counter: tokens.NewEstimatingCounter(),
	}
}

// WithLocator sets a custom tag locator.
func (b *Builder) WithLocator(l Locator) *Builder {
	b.locator = l
	return b
}

// WithCounter sets a custom token counter.
func (b *Builder) WithCounter(c tokens.Counter) *Builder {
	b.counter = c
	return b
}

// Build returns an excerpt of doc anchored on tagName, within opts.
//
// When the whole document fits the token budget it is returned
// verbatim, untruncated, regardless of tag presence. Otherwise the tag
// is located, a line window is selected around it, truncation markers
// are added for each cut side, and the assembled excerpt is re-checked
// against the budget: a result is returned only when it estimates
// strictly below MaxTokens, otherwise Build fails with a
// BudgetExceededError. Build never retries with different limits.
func (b *Builder) Build(doc *document.Document, tagName string, opts Options) (Excerpt, error) {
	switch {
	case doc == nil || doc.Text() == "":
		return Excerpt{}, fmt.Errorf("empty document: %w", ErrInvalidInput)
	case tagName == "":
		return Excerpt{}, fmt.Errorf("empty tag name: %w", ErrInvalidInput)
	case opts.MaxTokens < 1:
		return Excerpt{}, fmt.Errorf("max tokens %d: %w", opts.MaxTokens, ErrInvalidInput)
	case opts.MaxLines < 1:
		return Excerpt{}, fmt.Errorf("max lines %d: %w", opts.MaxLines, ErrInvalidInput)
	}

	full := doc.Text()
	if n := b.counter.Count(full); n <= opts.MaxTokens {
		return Excerpt{Text: full, Tokens: n}, nil
	}

	anchor, err := b.locator.Locate(doc, tagName)
	if err != nil {
		return Excerpt{}, err
	}

	win, err := window.Select(doc.LineCount(), anchor, opts.MaxLines)
	if err != nil {
		// Unreachable with a well-behaved locator; surfaced rather
		// than swallowed because Locator is an injection point.
		return Excerpt{}, fmt.Errorf("select window for tag %q: %w", tagName, err)
	}

	text := doc.Slice(win.Start, win.End)
	if win.TruncatedBefore {
		text = leadingMarker + text
	}
	if win.TruncatedAfter {
		text += trailingMarker
	}

	// Hard post-condition: the excerpt, markers included, must
	// estimate strictly under the budget.
	n := b.counter.Count(text)
	if n >= opts.MaxTokens {
		return Excerpt{}, &BudgetExceededError{Tag: tagName, Tokens: n, MaxTokens: opts.MaxTokens}
	}

	return Excerpt{Text: text, Truncated: true, Window: win, Tokens: n}, nil
}

// BuildForModel builds with a token budget derived from the named
// model's context window, giving the excerpt its ContextBudget share,
// and the default line limit.
func (b *Builder) BuildForModel(doc *document.Document, tagName, model string) (Excerpt, error) {
	budget := tokens.NewContextBudgetForModel(model)
	return b.Build(doc, tagName, Options{
		MaxTokens: budget.Excerpt,
		MaxLines:  DefaultMaxLines,
	})
}
