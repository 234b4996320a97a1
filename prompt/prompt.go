package prompt

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/promptkit/message"
)

// Snapshot is the message list captured at the moment a version was
// superseded.
type Snapshot struct {
	// Version is the version number that was live for these messages.
	Version int

	// Messages is the full message list at that version.
	Messages []message.Item
}

// Prompt is an ordered, versioned conversation plus generation options
// and an optional output schema. It is the unit handed to model
// invocation.
//
// Prompts are immutable values: every mutating operation returns a new
// Prompt and leaves the original valid, which is what makes version
// snapshots trustworthy.
type Prompt struct {
	// ID identifies the conversation across versions.
	ID string

	// Messages is the ordered conversation.
	Messages []message.Item

	// Version is the live version counter, starting at 1.
	Version int

	// History holds superseded snapshots, newest first.
	History []Snapshot

	// Options are generation parameters (temperature, max_tokens, ...).
	// Last write wins per key.
	Options map[string]any

	// OutputSchema optionally constrains the response shape.
	OutputSchema *jsonschema.Schema

	// Params are default assigns for template-engine messages,
	// overridable per render call.
	Params map[string]any
}

// New creates a version-1 Prompt holding a single message.
func New(role message.Role, content string) (Prompt, error) {
	item, err := message.New(message.Attrs{Role: role, Content: content})
	if err != nil {
		return Prompt{}, err
	}
	return NewFromItems(item), nil
}

// MustNew creates a single-message Prompt, panicking on error.
func MustNew(role message.Role, content string) Prompt {
	p, err := New(role, content)
	if err != nil {
		panic(fmt.Sprintf("prompt.MustNew: %v", err))
	}
	return p
}

// NewFromMap creates a fully-specified version-1 Prompt from a loosely
// typed map, such as one decoded from JSON. Recognized keys:
//
//   - "messages": list of message maps, coerced via message.FromMap
//   - "options":  generation options map
//   - "params":   default template assigns
//
// Message coercion failures propagate; unknown keys are ignored.
func NewFromMap(m map[string]any) (Prompt, error) {
	var items []message.Item
	if raw, ok := m["messages"].([]any); ok {
		for i, entry := range raw {
			loose, ok := entry.(map[string]any)
			if !ok {
				return Prompt{}, fmt.Errorf("message %d: expected map, got %T", i, entry)
			}
			item, err := message.FromMap(loose)
			if err != nil {
				return Prompt{}, fmt.Errorf("message %d: %w", i, err)
			}
			items = append(items, item)
		}
	}

	p := NewFromItems(items...)
	if options, ok := m["options"].(map[string]any); ok {
		for k, v := range options {
			p = p.WithOption(k, v)
		}
	}
	if params, ok := m["params"].(map[string]any); ok {
		p = p.WithParams(params)
	}
	return p, nil
}

// NewFromItems creates a version-1 Prompt from pre-built messages.
func NewFromItems(items ...message.Item) Prompt {
	messages := make([]message.Item, len(items))
	copy(messages, items)
	return Prompt{
		ID:       uuid.NewString(),
		Messages: messages,
		Version:  1,
	}
}

// NewVersion captures the current messages into the history, applies
// transform to obtain the next state, and returns it at version+1.
// Options, output schema, and params carry forward unless transform
// itself changes them.
//
// The typical transform appends a message:
//
//	p2 := p.NewVersion(func(p prompt.Prompt) prompt.Prompt {
//	    return p.AddMessage(message.RoleAssistant, "Hello!")
//	})
func (p Prompt) NewVersion(transform func(Prompt) Prompt) Prompt {
	snapshot := Snapshot{
		Version:  p.Version,
		Messages: copyItems(p.Messages),
	}

	next := transform(p)
	next.ID = p.ID

	history := make([]Snapshot, 0, len(p.History)+1)
	history = append(history, snapshot)
	history = append(history, p.History...)
	next.History = history
	next.Version = p.Version + 1

	return next
}

// AddMessage returns a Prompt with one more message appended. Invalid
// attributes are ignored rather than failing, so AddMessage chains
// cleanly inside NewVersion transforms; use message.New directly when
// the attributes are untrusted.
func (p Prompt) AddMessage(role message.Role, content string) Prompt {
	item, err := message.New(message.Attrs{Role: role, Content: content})
	if err != nil {
		return p
	}
	return p.AddItem(item)
}

// AddItem returns a Prompt with the given message appended.
func (p Prompt) AddItem(item message.Item) Prompt {
	messages := make([]message.Item, 0, len(p.Messages)+1)
	messages = append(messages, p.Messages...)
	messages = append(messages, item)
	p.Messages = messages
	return p
}

// GetVersion returns the Prompt as it was at version n: the current
// Prompt when n is the live version, otherwise a view carrying the
// snapshot captured when version n was superseded. The view keeps the
// current options, schema, and params but no history of its own.
//
// Returns ErrVersionNotFound if version n was never captured.
func (p Prompt) GetVersion(n int) (Prompt, error) {
	if n == p.Version {
		return p, nil
	}
	for _, snap := range p.History {
		if snap.Version == n {
			view := p
			view.Version = snap.Version
			view.Messages = copyItems(snap.Messages)
			view.History = nil
			return view, nil
		}
	}
	return Prompt{}, fmt.Errorf("%w: version %d", ErrVersionNotFound, n)
}

func copyItems(items []message.Item) []message.Item {
	copied := make([]message.Item, len(items))
	copy(copied, items)
	return copied
}
