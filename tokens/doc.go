// Package tokens provides tokenization, token counting, and budget
// management for LLM prompts.
//
// # Tokenizer
//
// The Tokenizer interface converts between text and a model's token
// space, and is required to round-trip exactly. The production
// implementation wraps tiktoken BPE encodings:
//
//	tok, err := tokens.NewTiktoken("cl100k_base")
//	seq := tok.Encode("Hello, world!")
//	text := tok.Decode(seq) // "Hello, world!"
//
// RuneTokenizer is a dependency-free implementation (one token per
// rune) for tests and environments without encoding data.
//
// # Counter
//
// The Counter interface estimates token counts without a full encode:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// TokenizerCounter adapts any Tokenizer to the Counter interface when
// exact counts are needed.
//
// # Model
//
// Model bundles a context window with the tokenizer that defines it,
// and is consumed by the split package when chunking oversized inputs:
//
//	model := tokens.Model{
//	    Name:          "claude-sonnet-4",
//	    ContextWindow: tokens.GetModelLimit("claude-sonnet-4"),
//	    Tokenizer:     tok,
//	}
//
// # Budget
//
// Budget helps allocate tokens across prompt components:
//
//	budget := tokens.NewBudget(100000)
//	// Default allocation: 20% system, 40% context, 30% user, 10% reserved
//	budget.FitsSystem(text)
//	budget.RemainingContext(usedTokens)
package tokens
