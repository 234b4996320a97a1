// Package model provides model-name normalization, token-level model
// descriptors, and cost tracking.
//
// Normalize collapses full model identifiers to family aliases:
//
//	model.Normalize("claude-sonnet-4-20250514") // "sonnet"
//
// Descriptor builds the tokens.Model consumed by the split package:
//
//	tok, _ := tokens.NewTiktoken("")
//	m := model.Descriptor("claude-sonnet-4", tok)
//	s := split.New(bigInput, m)
//
// CostTracker accumulates token usage per model family and estimates
// spend from the Prices table.
package model
