// Package excerpt builds token-budgeted excerpts of documents anchored
// around a named tag.
//
// A build runs in three stages. The whole document is estimated first:
// if it already fits the token budget it is returned verbatim. When it
// does not, the tag's defining occurrence is located, a line window of
// at most MaxLines is selected around it, and truncation markers
// ("...") are rendered on each cut side. The assembled excerpt is then
// re-checked: Build only returns text that estimates strictly below
// MaxTokens, and fails with a BudgetExceededError otherwise.
//
// # Usage
//
// One-shot with default limits (2048 tokens, 128 lines):
//
//	text, truncated, err := excerpt.FromText(docText, "quickref")
//
// With explicit limits and custom collaborators:
//
//	builder := excerpt.New().WithCounter(counter)
//	ex, err := builder.Build(doc, "quickref", excerpt.Options{
//	    MaxTokens: 4096,
//	    MaxLines:  200,
//	})
//
// # Failures
//
// All failures are typed and matchable with errors.Is: ErrTagNotFound
// when the document has no defining occurrence of the tag,
// ErrBudgetExceeded when windowing cannot bring the excerpt under
// budget (the error carries the measured count), and ErrInvalidInput
// for empty or non-positive inputs. The builder never logs and never
// retries; the caller decides how to react.
package excerpt
