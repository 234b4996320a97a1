package tokens

// Default budget allocation percentages.
const (
	DefaultSystemPercent   = 20
	DefaultContextPercent  = 40
	DefaultUserPercent     = 30
	DefaultReservedPercent = 10
)

// Budget manages token allocation across prompt components.
type Budget struct {
	// Total is the total token budget available.
	Total int

	// System is the budget for system prompts.
	System int

	// Context is the budget for task context, history, etc.
	Context int

	// User is the budget for user messages.
	User int

	// Reserved is the budget reserved for response generation.
	Reserved int

	counter Counter
}

// NewBudget creates a budget with total tokens allocated proportionally.
// Default allocation: 20% system, 40% context, 30% user, 10% reserved.
func NewBudget(total int) *Budget {
	return NewBudgetWithAllocation(total,
		DefaultSystemPercent, DefaultContextPercent,
		DefaultUserPercent, DefaultReservedPercent)
}

// NewBudgetWithAllocation creates a budget with custom allocations.
// The allocations are relative weights normalized to the total budget.
// For example, (100000, 20, 40, 30, 10) allocates 20% system,
// 40% context, 30% user, 10% reserved.
func NewBudgetWithAllocation(total, system, context, user, reserved int) *Budget {
	sum := system + context + user + reserved
	if sum == 0 {
		sum = 100
	}
	return &Budget{
		Total:    total,
		System:   total * system / sum,
		Context:  total * context / sum,
		User:     total * user / sum,
		Reserved: total * reserved / sum,
		counter:  NewEstimatingCounter(),
	}
}

// NewBudgetForModel creates a default-allocated budget sized to the
// model's context window.
func NewBudgetForModel(model Model) *Budget {
	b := NewBudget(model.ContextWindow)
	if model.Tokenizer != nil {
		b.counter = &TokenizerCounter{Tokenizer: model.Tokenizer}
	}
	return b
}

// WithCounter sets a custom token counter and returns the budget.
func (b *Budget) WithCounter(counter Counter) *Budget {
	b.counter = counter
	return b
}

// FitsSystem returns true if the system prompt fits within the system budget.
func (b *Budget) FitsSystem(text string) bool {
	return b.counter.FitsInLimit(text, b.System)
}

// FitsContext returns true if the context fits within the context budget.
func (b *Budget) FitsContext(text string) bool {
	return b.counter.FitsInLimit(text, b.Context)
}

// FitsUser returns true if the user message fits within the user budget.
func (b *Budget) FitsUser(text string) bool {
	return b.counter.FitsInLimit(text, b.User)
}

// RemainingContext returns the remaining context budget after accounting
// for used tokens.
func (b *Budget) RemainingContext(usedTokens int) int {
	remaining := b.Context - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingTotal returns remaining tokens after subtracting used amounts
// and the reserved response budget.
func (b *Budget) RemainingTotal(systemUsed, contextUsed, userUsed int) int {
	used := systemUsed + contextUsed + userUsed + b.Reserved
	remaining := b.Total - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
