// Package prompt builds ordered, versioned conversations ready for
// model invocation.
//
// A Prompt is an immutable value: message edits, option setters, and
// versioning all return new Prompts, so old values — including every
// captured version snapshot — stay valid forever.
//
// # Building and versioning
//
//	p := prompt.MustNew(message.RoleUser, "Hi")
//	p2 := p.NewVersion(func(p prompt.Prompt) prompt.Prompt {
//	    return p.AddMessage(message.RoleAssistant, "Hello!")
//	})
//	// p2.Version == 2; p2.History holds the version-1 snapshot
//	v1, err := p2.GetVersion(1)
//
// # Options and schema
//
// Generation options use chained setters, last write wins per key:
//
//	p = p.WithTemperature(0.2).WithMaxTokens(1024).WithStop("\n\n")
//	p = p.WithOutputSchema(&Answer{}) // reflected via invopop/jsonschema
//
// # Rendering
//
// Render resolves template-engine messages against the prompt's params
// merged with per-call overrides (overrides win) and passes plain
// messages through. RenderWithOptions additionally packages the
// generation options; overrides never affect those.
//
//	out, err := p.RenderWithOptions(map[string]any{"topic": "go"})
//
// # Composition
//
// Compose folds mixed prompt-producing units — callables, Promptable
// values such as template.Template, and raw strings — into one string,
// typically a system preamble:
//
//	preamble, err := prompt.Compose([]any{
//	    "You are a helpful assistant.",
//	    personaTemplate, // template.Template
//	    prompt.Func(func(ctx map[string]any) (string, error) {
//	        return fmt.Sprintf("Today is %s.", ctx["date"]), nil
//	    }),
//	}, map[string]any{"date": "2026-08-27"})
package prompt
