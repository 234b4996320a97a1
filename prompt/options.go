package prompt

import (
	"time"

	"github.com/invopop/jsonschema"
)

// Generation option keys. Stored in Prompt.Options; last write wins
// per key.
const (
	OptTemperature = "temperature"
	OptMaxTokens   = "max_tokens"
	OptTopP        = "top_p"
	OptTimeout     = "timeout"
	OptStop        = "stop"
)

// WithTemperature returns a Prompt with the sampling temperature set.
func (p Prompt) WithTemperature(v float64) Prompt {
	return p.WithOption(OptTemperature, v)
}

// WithMaxTokens returns a Prompt with the response token limit set.
func (p Prompt) WithMaxTokens(v int) Prompt {
	return p.WithOption(OptMaxTokens, v)
}

// WithTopP returns a Prompt with nucleus sampling set.
func (p Prompt) WithTopP(v float64) Prompt {
	return p.WithOption(OptTopP, v)
}

// WithTimeout returns a Prompt with the request timeout set.
func (p Prompt) WithTimeout(d time.Duration) Prompt {
	return p.WithOption(OptTimeout, d)
}

// WithStop returns a Prompt with stop sequences set. A single value
// becomes a one-element list; multiple values are stored verbatim.
func (p Prompt) WithStop(stop ...string) Prompt {
	return p.WithOption(OptStop, stop)
}

// WithOption returns a Prompt with one generation option set.
// The receiver's option map is copied, never mutated.
func (p Prompt) WithOption(key string, value any) Prompt {
	options := make(map[string]any, len(p.Options)+1)
	for k, v := range p.Options {
		options[k] = v
	}
	options[key] = value
	p.Options = options
	return p
}

// WithParams returns a Prompt with default template assigns merged in.
// New keys win over existing ones.
func (p Prompt) WithParams(params map[string]any) Prompt {
	merged := make(map[string]any, len(p.Params)+len(params))
	for k, v := range p.Params {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	p.Params = merged
	return p
}

// WithOutputSchema returns a Prompt whose responses should conform to
// the given schema. Pass a ready *jsonschema.Schema, or any other value
// to have its schema reflected from the Go type:
//
//	type Answer struct {
//	    Score  int    `json:"score"`
//	    Reason string `json:"reason"`
//	}
//	p = p.WithOutputSchema(&Answer{})
func (p Prompt) WithOutputSchema(v any) Prompt {
	if schema, ok := v.(*jsonschema.Schema); ok {
		p.OutputSchema = schema
		return p
	}
	p.OutputSchema = jsonschema.Reflect(v)
	return p
}
