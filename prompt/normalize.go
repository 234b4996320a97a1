package prompt

import (
	"fmt"

	"github.com/randalmurphal/promptkit/message"
)

// Normalize coerces a loosely typed value into a Prompt, for use as a
// validation hook by invocation layers that accept "a prompt or just a
// string":
//
//   - a string becomes a single system-role Prompt
//   - a Prompt (or *Prompt) passes through unchanged
//
// Any other value fails with ErrInvalidPromptValue.
func Normalize(v any) (Prompt, error) {
	switch value := v.(type) {
	case Prompt:
		return value, nil
	case *Prompt:
		if value == nil {
			return Prompt{}, fmt.Errorf("%w: nil *Prompt", ErrInvalidPromptValue)
		}
		return *value, nil
	case string:
		return New(message.RoleSystem, value)
	default:
		return Prompt{}, fmt.Errorf("%w: %T", ErrInvalidPromptValue, v)
	}
}
