// Package template provides deferred-render prompt templates with
// version history and usage analytics.
//
// # Syntax
//
// Templates use a Handlebars-like syntax converted to Go template
// syntax before execution. Simple variables use double braces:
//
//	Hello, {{name}}!
//
// Conditionals use #if and /if, iteration uses #each and /each:
//
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//	{{#each items}}{{.}} {{/each}}
//
// Built-in helpers: truncate, json, upper, lower, trim, join, default,
// indent. Unresolved variable references fail the render with ErrRender;
// malformed syntax fails with ErrSyntax. The two are distinct so callers
// can tell "retry with better inputs" apart from "the template is broken".
//
// # Templates
//
// A Template carries its text, the role of the message it produces,
// default and sample inputs, a version counter with history, and usage
// stats. Templates are immutable values; every mutator returns a new
// Template:
//
//	t, err := template.New(template.Options{
//	    Text:          "Summarize {{document}} in {{style}} style.",
//	    Role:          message.RoleSystem,
//	    DefaultInputs: map[string]any{"style": "concise"},
//	})
//	out, err := t.Format(map[string]any{"document": text})
//	item, err := t.ToMessage(map[string]any{"document": text})
//
// # Versioning
//
// UpdateText bumps the version and records the superseded text:
//
//	t2 := t.UpdateText("Rewritten {{document}}")  // version 2, history [v1]
//	t3, err := t2.RollbackToVersion(1)            // text of v1 restored
//
// RollbackToVersion restores the recorded text and removes the history
// entry but does not touch the live version counter. After a rollback
// the counter therefore stops corresponding 1:1 with distinct text
// states. Callers that need a reconciled counter should UpdateText with
// the restored text instead.
//
// # Analytics
//
// RecordUsage folds observations into running means:
//
//	t = t.RecordUsage(template.Metrics{TokensUsed: 120, Success: true})
//
// EstimateTokens renders against sample inputs and estimates cost from
// the rendered length (~4 characters per token); it returns 0 rather
// than an error when rendering fails.
package template
