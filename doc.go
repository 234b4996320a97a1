// Package promptkit provides prompt construction utilities for working
// with Large Language Models.
//
// promptkit is a library, not a client: it builds provider-agnostic
// prompts and shapes responses, while network I/O, provider selection,
// and authentication stay with the caller. Each subpackage can be used
// independently:
//
//   - message: conversational turn type (roles, multipart content)
//   - template: deferred-render templates with versioning and usage analytics
//   - prompt: ordered, versioned conversations with options and composition
//   - tokens: tokenizers, token counting, and budget management
//   - split: token-budget chunking of oversized inputs
//   - truncate: token-aware text truncation strategies
//   - model: model-name normalization, descriptors, and cost tracking
//   - library: on-disk template collections with hot reload
//   - parser: extract JSON, YAML, and code blocks from LLM responses
//
// # Quick Start
//
// Build and render a versioned prompt:
//
//	import "github.com/randalmurphal/promptkit/prompt"
//	p := prompt.MustNew(message.RoleUser, "Hi").WithTemperature(0.2)
//	out, _ := p.RenderWithOptions(nil)
//
// Render a template:
//
//	import "github.com/randalmurphal/promptkit/template"
//	t, _ := template.New(template.Options{Text: "Hello {{name}}"})
//	result, _ := t.Format(map[string]any{"name": "World"})
//
// Chunk an oversized input:
//
//	import "github.com/randalmurphal/promptkit/split"
//	s := split.New(bigInput, model)
//	chunk, s := s.NextChunk(runningSummary)
//
// # Design Philosophy
//
//   - Immutable values: "mutations" return new values, so version
//     history and chunking state stay trustworthy
//   - Each package usable independently
//   - Explicit errors; panicking Must* variants as caller opt-in
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
package promptkit
