// Package truncate provides token-aware text truncation.
//
// Where the split package walks an oversized input chunk by chunk,
// truncate fits a single text into a budget by discarding content,
// marking the removed region with a suffix:
//
//	out, truncated := truncate.New(truncate.FromEnd).Truncate(text, 500)
//
// Strategies remove content from the end (default), the start, or the
// middle (keeping both ends, useful for logs where the head and tail
// matter most).
//
// The default counter estimates ~4 characters per token. For exact,
// model-specific truncation use a tokenizer-backed counter:
//
//	tok, _ := tokens.NewTiktoken("")
//	tr := truncate.New(truncate.FromEnd).
//	    WithCounter(&tokens.TokenizerCounter{Tokenizer: tok})
package truncate
