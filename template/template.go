package template

import (
	"fmt"

	"github.com/randalmurphal/promptkit/message"
	"github.com/randalmurphal/promptkit/tokens"
)

// Kind identifies the template syntax family.
type Kind string

// KindExpression is the embedded-expression syntax ({{variable}}).
// It is currently the only supported kind.
const KindExpression Kind = "expression"

// Revision is one superseded text state in a template's history.
type Revision struct {
	// Version is the version number that was live when this text
	// was superseded.
	Version int

	// Text is the template text at that version.
	Text string
}

// Template is a deferred-render, versioned prompt template with usage
// analytics. Templates are immutable values: every operation that
// appears to mutate one returns a new Template, and the original stays
// valid. This is what keeps version history trustworthy.
type Template struct {
	// Text is the current template source.
	Text string

	// Role is the message role produced by ToMessage.
	Role message.Role

	// Engine is the template syntax kind.
	Engine Kind

	// Version is the live version counter, strictly increasing across
	// IncrementVersion calls. Starts at 1.
	Version int

	// History holds superseded revisions, newest first.
	History []Revision

	// DefaultInputs are merged under caller inputs at render time.
	DefaultInputs map[string]any

	// Cacheable marks the rendered output as safe for provider-side
	// prompt caching.
	Cacheable bool

	// EstimatedTokens is a heuristic token estimate, computed eagerly
	// at construction when SampleInputs is non-empty.
	EstimatedTokens int

	// SampleInputs are representative inputs used for token estimation.
	SampleInputs map[string]any

	// Stats accumulates usage analytics.
	Stats Stats
}

// Options configures a new Template. Text is required; Role defaults to
// user, Engine to KindExpression, Version to 1.
type Options struct {
	Text          string
	Role          message.Role
	Engine        Kind
	Version       int
	DefaultInputs map[string]any
	Cacheable     bool
	SampleInputs  map[string]any
}

// New builds a validated Template. The text is syntax-checked at
// construction, so a Template that exists is always parseable; only
// render-time input problems remain. When SampleInputs is non-empty,
// EstimatedTokens is computed eagerly.
//
// Validation failures wrap ErrValidation and never reach the render
// path.
func New(opts Options) (Template, error) {
	if opts.Text == "" {
		return Template{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	role := opts.Role
	if role == "" {
		role = message.RoleUser
	}
	if !role.Valid() {
		return Template{}, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}

	kind := opts.Engine
	if kind == "" {
		kind = KindExpression
	}
	if kind != KindExpression {
		return Template{}, fmt.Errorf("%w: unsupported engine %q", ErrValidation, kind)
	}

	version := opts.Version
	if version == 0 {
		version = 1
	}
	if version < 1 {
		return Template{}, fmt.Errorf("%w: version must be >= 1, got %d", ErrValidation, version)
	}

	if err := Compile(opts.Text); err != nil {
		return Template{}, err
	}

	t := Template{
		Text:          opts.Text,
		Role:          role,
		Engine:        kind,
		Version:       version,
		DefaultInputs: opts.DefaultInputs,
		Cacheable:     opts.Cacheable,
		SampleInputs:  opts.SampleInputs,
	}

	if len(opts.SampleInputs) > 0 {
		t.EstimatedTokens = t.EstimateTokens(nil)
	}

	return t, nil
}

// MustNew builds a Template, panicking on error.
// Use for static templates whose shape is known at compile time.
func MustNew(opts Options) Template {
	t, err := New(opts)
	if err != nil {
		panic(fmt.Sprintf("template.MustNew: %v", err))
	}
	return t
}

// FormatOption customizes a single Format call.
type FormatOption func(*formatConfig)

type formatConfig struct {
	preHook  func(map[string]any) map[string]any
	postHook func(string) string
}

// WithPreHook transforms the merged inputs before rendering.
func WithPreHook(hook func(map[string]any) map[string]any) FormatOption {
	return func(c *formatConfig) {
		c.preHook = hook
	}
}

// WithPostHook transforms the rendered string before it is returned.
func WithPostHook(hook func(string) string) FormatOption {
	return func(c *formatConfig) {
		c.postHook = hook
	}
}

// Format renders the template against DefaultInputs merged with the
// caller's inputs (caller keys win). Failures wrap ErrRender for input
// problems and ErrSyntax if the text somehow stopped parsing.
func (t Template) Format(inputs map[string]any, opts ...FormatOption) (string, error) {
	cfg := formatConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	merged := mergeInputs(t.DefaultInputs, inputs)
	if cfg.preHook != nil {
		merged = cfg.preHook(merged)
	}

	rendered, err := defaultEngine.Render(t.Text, merged)
	if err != nil {
		return "", err
	}

	if cfg.postHook != nil {
		rendered = cfg.postHook(rendered)
	}
	return rendered, nil
}

// MustFormat renders the template, panicking on error.
func (t Template) MustFormat(inputs map[string]any, opts ...FormatOption) string {
	rendered, err := t.Format(inputs, opts...)
	if err != nil {
		panic(fmt.Sprintf("template.MustFormat: %v", err))
	}
	return rendered
}

// PromptString renders the template against ctx. It satisfies the
// prompt package's Promptable interface, letting Template values take
// part in prompt composition: context keys win over stored defaults,
// and an empty context renders with the defaults alone.
func (t Template) PromptString(ctx map[string]any) (string, error) {
	return t.Format(ctx)
}

// ToMessage renders the template and wraps the result as a message
// with the template's role.
func (t Template) ToMessage(inputs map[string]any) (message.Item, error) {
	rendered, err := t.Format(inputs)
	if err != nil {
		return message.Item{}, err
	}
	return message.Item{
		Role:    t.Role,
		Content: rendered,
		Engine:  message.EngineNone,
	}, nil
}

// IncrementVersion records the current text in the history and bumps
// the version counter. Returns the new Template; the receiver is
// unchanged.
func (t Template) IncrementVersion() Template {
	history := make([]Revision, 0, len(t.History)+1)
	history = append(history, Revision{Version: t.Version, Text: t.Text})
	history = append(history, t.History...)

	t.History = history
	t.Version++
	return t
}

// UpdateText bumps the version and replaces the template text.
// The previous text remains reachable through the history.
func (t Template) UpdateText(text string) Template {
	next := t.IncrementVersion()
	next.Text = text
	return next
}

// RollbackToVersion restores the text recorded for version n and
// removes that entry from the history. The live Version counter is
// deliberately left untouched, so after a rollback the counter no
// longer maps 1:1 onto distinct text states; see the package
// documentation for the rationale.
//
// Returns ErrRollbackNotFound, with the receiver unchanged, if no
// history entry carries version n.
func (t Template) RollbackToVersion(n int) (Template, error) {
	idx := -1
	for i, rev := range t.History {
		if rev.Version == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t, fmt.Errorf("%w: version %d", ErrRollbackNotFound, n)
	}

	history := make([]Revision, 0, len(t.History)-1)
	history = append(history, t.History[:idx]...)
	history = append(history, t.History[idx+1:]...)

	t.Text = t.History[idx].Text
	t.History = history
	return t, nil
}

// GetRevision returns the history entry for version n.
func (t Template) GetRevision(n int) (Revision, bool) {
	for _, rev := range t.History {
		if rev.Version == n {
			return rev, true
		}
	}
	return Revision{}, false
}

// EstimateTokens renders the template with the given inputs (falling
// back to SampleInputs when none are supplied) and estimates the token
// count from the rendered length. Returns 0 on any render failure;
// estimation is a heuristic, not an error path.
func (t Template) EstimateTokens(inputs map[string]any) int {
	if len(inputs) == 0 {
		inputs = t.SampleInputs
	}
	rendered, err := t.Format(inputs)
	if err != nil {
		return 0
	}
	return tokens.EstimateTokens(rendered)
}

// mergeInputs overlays inputs on top of defaults without mutating
// either map.
func mergeInputs(defaults, inputs map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(inputs))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range inputs {
		merged[k] = v
	}
	return merged
}
