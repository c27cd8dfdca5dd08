// Package excerptkit extracts token-budgeted excerpts of structured
// documents, anchored around a named tag, for inclusion in LLM context.
//
// excerptkit is a standalone toolkit designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - document: Immutable line-indexed documents with file loading and reload watching
//   - helptag: Parse and query help-style documents for *tag* anchors
//   - tokens: Token counting, tiktoken-backed counting, and context budgets
//   - window: Anchored line-window selection with truncation flags
//   - excerpt: Budgeted excerpt building around a located tag
//   - config: Settings files (YAML/TOML) for embedding applications
//
// # Quick Start
//
// One-shot excerpt with default limits (2048 tokens, 128 lines):
//
//	import "github.com/randalmurphal/excerptkit/excerpt"
//	text, truncated, err := excerpt.FromText(docText, "quickref")
//
// Full control over the collaborators:
//
//	builder := excerpt.New().WithCounter(myCounter).WithLocator(myLocator)
//	ex, err := builder.Build(document.New(docText), "quickref", excerpt.Options{
//	    MaxTokens: 4096,
//	    MaxLines:  200,
//	})
//
// # Design Philosophy
//
// excerptkit follows these principles:
//
//   - Each package usable independently
//   - Stateless cores that are safe to share across goroutines
//   - Explicit, typed failures: an unfound tag or a blown budget is an
//     error value, never a panic or a silent over-budget result
//   - Interfaces for the injected collaborators (locator, counter),
//     concrete types for everything else
package excerptkit
