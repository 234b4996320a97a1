package truncate

import (
	"strings"

	"github.com/randalmurphal/promptkit/tokens"
)

// Strategy defines where content is removed from.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// Default suffixes marking the removed region.
const (
	DefaultEndSuffix    = "..."
	DefaultMiddleSuffix = "\n...[content truncated]...\n"
	DefaultStartSuffix  = "..."
)

// Truncator reduces text to fit within a token limit.
type Truncator struct {
	counter  tokens.Counter
	strategy Strategy
	suffix   string
}

// New creates a truncator with the given strategy and the default
// estimating counter.
func New(strategy Strategy) *Truncator {
	suffix := DefaultEndSuffix
	if strategy == FromMiddle {
		suffix = DefaultMiddleSuffix
	}
	return &Truncator{
		counter:  tokens.NewEstimatingCounter(),
		strategy: strategy,
		suffix:   suffix,
	}
}

// WithCounter sets a custom token counter. Pass a
// tokens.TokenizerCounter for exact, model-specific truncation.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithSuffix sets a custom marker for the removed region.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// Truncate reduces the text to fit within the token limit.
// Returns the truncated text and whether truncation occurred.
func (t *Truncator) Truncate(text string, maxTokens int) (string, bool) {
	if t.counter.FitsInLimit(text, maxTokens) {
		return text, false
	}

	// Reserve space for the suffix in every strategy.
	target := maxTokens - t.counter.Count(t.suffix)
	if target <= 0 {
		return t.suffix, true
	}

	runes := []rune(text)
	switch t.strategy {
	case FromMiddle:
		return t.truncateMiddle(runes, target), true
	case FromStart:
		return t.truncateStart(runes, target), true
	default:
		return t.truncateEnd(runes, target), true
	}
}

// truncateEnd keeps the longest prefix that fits.
func (t *Truncator) truncateEnd(runes []rune, target int) string {
	keep := t.prefixFor(runes, target)
	if keep == 0 {
		return t.suffix
	}
	return string(runes[:keep]) + t.suffix
}

// truncateStart keeps the longest suffix that fits.
func (t *Truncator) truncateStart(runes []rune, target int) string {
	// Binary search for the earliest start whose tail fits.
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if t.counter.FitsInLimit(string(runes[mid:]), target) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	if low >= len(runes) {
		return t.suffix
	}
	return t.suffix + string(runes[low:])
}

// truncateMiddle keeps a fitting prefix and suffix around the marker.
func (t *Truncator) truncateMiddle(runes []rune, target int) string {
	half := target / 2

	startKeep := t.prefixFor(runes, half)
	endStart := len(runes) - startKeep
	if endStart < startKeep {
		endStart = startKeep
	}

	var sb strings.Builder
	sb.WriteString(string(runes[:startKeep]))
	sb.WriteString(t.suffix)
	if endStart < len(runes) {
		sb.WriteString(string(runes[endStart:]))
	}
	return sb.String()
}

// prefixFor finds how many leading runes fit in the token count.
func (t *Truncator) prefixFor(runes []rune, maxTokens int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid]), maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// ToTokens truncates text to fit within the token limit, removing
// content from the end, with the default estimating counter.
func ToTokens(text string, maxTokens int) string {
	result, _ := New(FromEnd).Truncate(text, maxTokens)
	return result
}
