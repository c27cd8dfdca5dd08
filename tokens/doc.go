// Package tokens provides token counting and context budgets for
// document excerpts.
//
// Token estimation defaults to the rule-of-thumb that approximately
// 4 characters equals 1 token for English text. This gives a fast
// estimate without a model-specific tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// When exact counts matter, use the tiktoken-backed counter:
//
//	counter, err := tokens.NewTiktokenCounter()
//	count := counter.Count("Hello, world!")
//
// # Context Budget
//
// ContextBudget derives an excerpt token budget from a model's context
// window, keeping most of the window for conversation and response:
//
//	budget := tokens.NewContextBudgetForModel("claude-sonnet-4")
//	// budget.Excerpt is the MaxTokens to hand the excerpt builder
//	budget.FitsExcerpt(text)
//
// Custom allocations:
//
//	budget := tokens.NewContextBudgetWithAllocation(
//	    200000,  // total
//	    15,      // 15% excerpt
//	    65,      // 65% conversation
//	    20,      // 20% reserved
//	)
//
// See ModelLimits for the context windows of common models.
package tokens
