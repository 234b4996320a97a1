package model

import (
	"github.com/randalmurphal/promptkit/tokens"
)

// Descriptor bundles a model name with its token-level properties:
// the context window from the shared limits table and the tokenizer
// that defines its token space.
//
// The returned Model is what the split package consumes when chunking
// oversized inputs for the named model.
func Descriptor(name string, tokenizer tokens.Tokenizer) tokens.Model {
	return tokens.Model{
		Name:          name,
		ContextWindow: tokens.GetModelLimit(name),
		Tokenizer:     tokenizer,
	}
}

// DescriptorWithWindow is Descriptor with an explicit context window,
// for models absent from the limits table.
func DescriptorWithWindow(name string, window int, tokenizer tokens.Tokenizer) tokens.Model {
	return tokens.Model{
		Name:          name,
		ContextWindow: window,
		Tokenizer:     tokenizer,
	}
}
