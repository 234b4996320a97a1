package prompt

import (
	"fmt"
	"strings"
)

// DefaultSeparator joins composed prompt units.
const DefaultSeparator = "\n\n"

// Func is a callable prompt unit: it maps a context map to a string.
type Func func(ctx map[string]any) (string, error)

// Promptable is a data value that can project itself to a prompt
// string. Implementations decide how the external context interacts
// with their own fields; by convention context values win on key
// collision, and an empty context projects the value as-is.
// template.Template satisfies Promptable.
type Promptable interface {
	PromptString(ctx map[string]any) (string, error)
}

// Text wraps a raw string as a composition unit that ignores context.
type Text string

// PromptString returns the wrapped string unchanged.
func (t Text) PromptString(map[string]any) (string, error) {
	return string(t), nil
}

// Compose folds a heterogeneous list of prompt units into one string,
// joined in input order by DefaultSeparator. Each item must be one of:
//
//   - Func (or a bare func(map[string]any) (string, error)) — called
//     with the context
//   - Promptable — asked to project itself against the context
//   - string — used verbatim
//
// Anything else is a contract violation and fails immediately with
// ErrNotComposable.
func Compose(items []any, ctx map[string]any) (string, error) {
	return ComposeWith(items, ctx, DefaultSeparator)
}

// ComposeWith is Compose with an explicit separator.
func ComposeWith(items []any, ctx map[string]any, separator string) (string, error) {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		part, err := renderUnit(item, ctx)
		if err != nil {
			return "", fmt.Errorf("compose item %d: %w", i, err)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, separator), nil
}

func renderUnit(item any, ctx map[string]any) (string, error) {
	switch v := item.(type) {
	case Func:
		return v(ctx)
	case func(map[string]any) (string, error):
		return v(ctx)
	case Promptable:
		return v.PromptString(ctx)
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNotComposable, item)
	}
}
