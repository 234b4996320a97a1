package template

import "errors"

// Sentinel errors for template operations. The taxonomy separates
// construction-time validation, parse-time syntax, and render-time
// failures so callers can decide whether a template is broken or was
// just given bad inputs.
var (
	// ErrEmpty is returned when the template text is empty.
	ErrEmpty = errors.New("template is empty")

	// ErrValidation is returned when construction attributes are malformed.
	ErrValidation = errors.New("template validation error")

	// ErrSyntax is returned when the template text cannot be parsed,
	// independent of any runtime inputs.
	ErrSyntax = errors.New("template syntax error")

	// ErrRender is returned when a syntactically valid template fails to
	// render against the supplied inputs, e.g. an unresolved reference.
	ErrRender = errors.New("template render error")

	// ErrRollbackNotFound is returned when the requested version is
	// absent from the version history.
	ErrRollbackNotFound = errors.New("rollback version not found")
)
