package tokens

// Default percentage splits for a model context window when deriving
// an excerpt budget.
const (
	// DefaultExcerptPercent is the share of the window given to a
	// document excerpt.
	DefaultExcerptPercent = 10

	// DefaultConversationPercent is the share kept for conversation
	// history and the rest of the prompt.
	DefaultConversationPercent = 70

	// DefaultReservedPercent is the share reserved for response
	// generation.
	DefaultReservedPercent = 20
)

// ContextBudget splits a model context window into the share available
// for a document excerpt, the share kept for the surrounding
// conversation, and the share reserved for the response. Callers use
// the Excerpt share as the MaxTokens limit when building excerpts.
type ContextBudget struct {
	// Total is the model's full context window in tokens.
	Total int

	// Excerpt is the budget for an embedded document excerpt.
	Excerpt int

	// Conversation is the budget for history and prompt scaffolding.
	Conversation int

	// Reserved is the budget held back for response generation.
	Reserved int

	counter Counter
}

// NewContextBudget creates a budget over a total context window.
// Default allocation: 10% excerpt, 70% conversation, 20% reserved.
func NewContextBudget(total int) *ContextBudget {
	return &ContextBudget{
		Total:        total,
		Excerpt:      total * DefaultExcerptPercent / 100,
		Conversation: total * DefaultConversationPercent / 100,
		Reserved:     total * DefaultReservedPercent / 100,
		counter:      NewEstimatingCounter(),
	}
}

// NewContextBudgetForModel creates a budget sized to the named model's
// context window, falling back to the default limit for unknown models.
func NewContextBudgetForModel(model string) *ContextBudget {
	return NewContextBudget(GetModelLimit(model))
}

// NewContextBudgetWithAllocation creates a budget with custom allocations.
// The allocations are relative weights normalized against their sum, so
// (200000, 1, 7, 2) and (200000, 10, 70, 20) produce the same split.
func NewContextBudgetWithAllocation(total, excerpt, conversation, reserved int) *ContextBudget {
	sum := excerpt + conversation + reserved
	if sum == 0 {
		sum = 100
	}
	return &ContextBudget{
		Total:        total,
		Excerpt:      total * excerpt / sum,
		Conversation: total * conversation / sum,
		Reserved:     total * reserved / sum,
		counter:      NewEstimatingCounter(),
	}
}

// FitsExcerpt returns true if the text fits within the excerpt budget.
func (b *ContextBudget) FitsExcerpt(text string) bool {
	return b.counter.FitsInLimit(text, b.Excerpt)
}

// FitsConversation returns true if the text fits within the conversation budget.
func (b *ContextBudget) FitsConversation(text string) bool {
	return b.counter.FitsInLimit(text, b.Conversation)
}

// RemainingConversation returns the conversation budget left after
// accounting for used tokens. Never negative.
func (b *ContextBudget) RemainingConversation(usedTokens int) int {
	remaining := b.Conversation - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ModelLimits contains context window sizes for common models.
var ModelLimits = map[string]int{
	// Claude 4 models
	"claude-opus-4":   200000,
	"claude-sonnet-4": 200000,

	// Claude 3.5 models
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	// Claude 3 models
	"claude-3-opus":   200000,
	"claude-3-sonnet": 200000,
	"claude-3-haiku":  200000,

	// Default fallback
	"default": 100000,
}

// GetModelLimit returns the token limit for a model, or a default if not found.
func GetModelLimit(model string) int {
	if limit, ok := ModelLimits[model]; ok {
		return limit
	}
	return ModelLimits["default"]
}
