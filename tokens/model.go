package tokens

// Model describes the token-level properties of a target model:
// its context window and the tokenizer that defines its token space.
type Model struct {
	// Name is the model identifier, e.g. "claude-sonnet-4".
	Name string

	// ContextWindow is the model's total token budget per request.
	ContextWindow int

	// Tokenizer encodes and decodes text in the model's token space.
	Tokenizer Tokenizer
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

	// OpenAI models
	"gpt-4o":      128000,
	"gpt-4-turbo": 128000,

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
