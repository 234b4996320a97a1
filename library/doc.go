// Package library loads named prompt templates from a directory of
// definition files and optionally keeps them hot-reloaded.
//
// Definitions are YAML or TOML files carrying the template text plus
// its role, default inputs, and sample inputs:
//
//	# prompts/summarize.yaml
//	role: system
//	default_inputs:
//	  style: concise
//	text: |
//	  Summarize {{document}} in {{style}} style.
//
// Usage:
//
//	lib, err := library.Load("prompts")
//	tmpl, err := lib.Get("summarize")
//	out, err := tmpl.Format(map[string]any{"document": text})
//
// Watch keeps the library in sync with the directory until the context
// is cancelled:
//
//	err := lib.Watch(ctx)
//
// Every file is syntax-checked at load time; a library that loaded
// successfully contains only renderable templates.
package library
