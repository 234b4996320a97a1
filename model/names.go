package model

import "strings"

// Name represents a normalized model family name.
type Name string

// Claude model family constants.
const (
	Opus   Name = "opus"
	Sonnet Name = "sonnet"
	Haiku  Name = "haiku"
)

// GPT model family constants.
const (
	GPT     Name = "gpt"
	GPTMini Name = "gpt-mini"
)

// Tier represents a model capability tier.
type Tier int

// Tier constants representing model capability levels.
const (
	TierFast Tier = iota
	TierDefault
	TierThinking
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierDefault:
		return "default"
	case TierThinking:
		return "thinking"
	default:
		return "unknown"
	}
}

// TierFor returns the capability tier for a model.
func TierFor(model Name) Tier {
	switch Normalize(string(model)) {
	case Opus:
		return TierThinking
	case Haiku, GPTMini:
		return TierFast
	default:
		return TierDefault
	}
}

// Normalize converts a full model identifier to its family alias.
// For example, "claude-sonnet-4-20250514" becomes "sonnet" and
// "gpt-4o-mini" becomes "gpt-mini". Unrecognized names are returned
// as-is.
func Normalize(name string) Name {
	switch Name(name) {
	case Opus, Sonnet, Haiku, GPT, GPTMini:
		return Name(name)
	}
	lower := strings.ToLower(name)

	if strings.Contains(lower, "opus") {
		return Opus
	}
	if strings.Contains(lower, "sonnet") {
		return Sonnet
	}
	if strings.Contains(lower, "haiku") {
		return Haiku
	}

	if strings.HasPrefix(lower, "gpt-") {
		if strings.Contains(lower, "-mini") || strings.Contains(lower, "-nano") {
			return GPTMini
		}
		return GPT
	}

	return Name(name)
}
