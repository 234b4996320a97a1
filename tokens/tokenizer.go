package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Tokenizer converts between text and a model-specific token sequence.
// Implementations must round-trip: Decode(Encode(text)) == text.
type Tokenizer interface {
	// Encode converts text to its token sequence.
	Encode(text string) []int

	// Decode converts a token sequence back to text.
	Decode(tokens []int) string
}

// DefaultEncoding is the BPE encoding used when none is specified.
// cl100k_base is used by GPT-4 era models and is a reasonable
// approximation for other providers.
const DefaultEncoding = "cl100k_base"

// Tiktoken is a Tokenizer backed by a tiktoken BPE encoding.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken creates a Tokenizer using the named tiktoken encoding.
// An empty name selects DefaultEncoding.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("tokens: get encoding %q: %w", encoding, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// NewTiktokenForModel creates a Tokenizer using the encoding registered
// for the given model name (e.g. "gpt-4").
func NewTiktokenForModel(model string) (*Tiktoken, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("tokens: encoding for model %q: %w", model, err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Encode converts text to its BPE token sequence.
func (t *Tiktoken) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Decode converts a BPE token sequence back to text.
func (t *Tiktoken) Decode(tokens []int) string {
	return t.enc.Decode(tokens)
}

// RuneTokenizer treats every rune as one token. It round-trips exactly
// and needs no encoding data, which makes it useful in tests and as a
// dependency-free fallback. Token values are the rune code points.
type RuneTokenizer struct{}

// Encode converts text to one token per rune.
func (RuneTokenizer) Encode(text string) []int {
	runes := []rune(text)
	tokens := make([]int, len(runes))
	for i, r := range runes {
		tokens[i] = int(r)
	}
	return tokens
}

// Decode converts rune tokens back to text.
func (RuneTokenizer) Decode(tokens []int) string {
	runes := make([]rune, len(tokens))
	for i, tok := range tokens {
		runes[i] = rune(tok)
	}
	return string(runes)
}
