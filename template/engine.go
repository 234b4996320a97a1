package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders prompt templates with variable substitution.
// It supports both Go template syntax and Handlebars-like syntax.
//
// Unresolved variable references fail the render (missingkey=error)
// rather than producing "<no value>", so render failures against bad
// inputs are distinguishable from syntax errors.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
	}
}

// Render executes the template with the given assigns.
// The template string supports Handlebars-like syntax which is
// automatically converted to Go template syntax before execution.
// Parse failures wrap ErrSyntax; execution failures, including missing
// assigns, wrap ErrRender.
func (e *Engine) Render(templateStr string, assigns map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	converted := convertSyntax(templateStr)

	tmpl, parseErr := template.New("prompt").
		Funcs(e.funcs).
		Option("missingkey=error").
		Parse(converted)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrSyntax, parseErr)
	}

	if assigns == nil {
		assigns = map[string]any{}
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, assigns); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, execErr)
	}

	return buf.String(), nil
}

// Compile validates the template syntax without evaluating it.
// Returns nil if the template parses, an error wrapping ErrSyntax
// otherwise. Render-time input problems are not detected here.
func (e *Engine) Compile(templateStr string) error {
	if templateStr == "" {
		return ErrEmpty
	}

	converted := convertSyntax(templateStr)

	if _, parseErr := template.New("prompt").Funcs(e.funcs).Parse(converted); parseErr != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, parseErr)
	}
	return nil
}

// Variables validates the template and extracts the variable names it
// references, deduplicated in order of first appearance.
func (e *Engine) Variables(templateStr string) ([]string, error) {
	if err := e.Compile(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr), nil
}

// AddFunc adds a custom template function.
// The function will be available in templates using the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// defaultEngine backs the package-level convenience functions and the
// Template type. It is configured once and treated as read-only.
var defaultEngine = NewEngine()

// Render renders a template string with the default engine.
func Render(templateStr string, assigns map[string]any) (string, error) {
	return defaultEngine.Render(templateStr, assigns)
}

// Compile syntax-checks a template string with the default engine.
func Compile(templateStr string) error {
	return defaultEngine.Compile(templateStr)
}
