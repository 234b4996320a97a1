package prompt

import "errors"

// Sentinel errors for prompt operations.
var (
	// ErrVersionNotFound is returned when a requested version is neither
	// the current version nor present in the history.
	ErrVersionNotFound = errors.New("prompt version not found")

	// ErrNotComposable is returned when a compose item carries neither
	// of the two composition capabilities.
	ErrNotComposable = errors.New("item is not composable")

	// ErrInvalidPromptValue is returned when Normalize receives a value
	// that is neither a string nor a Prompt.
	ErrInvalidPromptValue = errors.New("value is not a prompt or string")
)
