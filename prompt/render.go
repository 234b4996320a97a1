package prompt

import (
	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/promptkit/message"
	"github.com/randalmurphal/promptkit/template"
)

// Rendered is one provider-ready message: role plus resolved content.
// Parts is set instead of Content for multipart messages.
type Rendered struct {
	Role    message.Role          `json:"role"`
	Content string                `json:"content,omitempty"`
	Parts   []message.ContentPart `json:"parts,omitempty"`
	Name    string                `json:"name,omitempty"`
}

// RenderedPrompt packages rendered messages with the prompt's
// generation options, ready to hand to a provider adapter.
type RenderedPrompt struct {
	Messages     []Rendered         `json:"messages"`
	Options      map[string]any     `json:"options,omitempty"`
	OutputSchema *jsonschema.Schema `json:"output_schema,omitempty"`
}

// Render resolves every message to provider-ready form. Messages marked
// with the template engine are rendered against Params merged with
// overrides (overrides win); plain messages pass through unchanged.
//
// Render is a pure function of the Prompt and overrides: it touches
// neither versions nor state, and template render failures surface as
// template.ErrRender.
func (p Prompt) Render(overrides map[string]any) ([]Rendered, error) {
	assigns := mergeParams(p.Params, overrides)

	rendered := make([]Rendered, 0, len(p.Messages))
	for _, item := range p.Messages {
		out := Rendered{
			Role:    item.Role,
			Content: item.Content,
			Parts:   item.Parts,
			Name:    item.Name,
		}
		if item.Engine == message.EngineTemplate && !item.IsMultipart() {
			content, err := template.Render(item.Content, assigns)
			if err != nil {
				return nil, err
			}
			out.Content = content
		}
		rendered = append(rendered, out)
	}
	return rendered, nil
}

// RenderWithOptions renders the messages like Render and additionally
// packages the prompt's generation options. Overrides apply only to
// message-template interpolation; the packaged options always reflect
// Prompt.Options as last set by the With* builders.
func (p Prompt) RenderWithOptions(overrides map[string]any) (RenderedPrompt, error) {
	messages, err := p.Render(overrides)
	if err != nil {
		return RenderedPrompt{}, err
	}

	options := make(map[string]any, len(p.Options))
	for k, v := range p.Options {
		options[k] = v
	}

	return RenderedPrompt{
		Messages:     messages,
		Options:      options,
		OutputSchema: p.OutputSchema,
	}, nil
}

func mergeParams(params, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(params)+len(overrides))
	for k, v := range params {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
