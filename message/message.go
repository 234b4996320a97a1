package message

import (
	"errors"
	"fmt"
)

// Role identifies the message sender.
type Role string

// Standard conversation roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// Valid reports whether the role is one of the standard roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	}
	return false
}

// Engine identifies how message content is interpreted at render time.
type Engine string

// Content engines.
const (
	// EngineNone passes content through unchanged.
	EngineNone Engine = "none"

	// EngineTemplate renders content through the template engine
	// before it is handed to a provider.
	EngineTemplate Engine = "template"
)

// Valid reports whether the engine is a known content engine.
func (e Engine) Valid() bool {
	return e == EngineNone || e == EngineTemplate
}

// Sentinel errors for message construction.
var (
	// ErrMissingContent is returned when a message has no content.
	ErrMissingContent = errors.New("message content is required")

	// ErrMissingRole is returned when a loose map has no role field.
	ErrMissingRole = errors.New("message role is required")

	// ErrInvalidRole is returned for a role outside the standard set.
	ErrInvalidRole = errors.New("invalid message role")

	// ErrInvalidEngine is returned for an unknown content engine.
	ErrInvalidEngine = errors.New("invalid content engine")
)

// Item is one conversational turn. An Item is an immutable value:
// construct it through New, FromMap, or NewMultipart and treat it as
// read-only afterwards.
//
// Content and Parts are mutually exclusive. Parts takes precedence
// when non-empty (multipart messages are never templated).
type Item struct {
	Role    Role          `json:"role"`
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"parts,omitempty"`
	Engine  Engine        `json:"engine,omitempty"`
	Name    string        `json:"name,omitempty"` // for function results
}

// Attrs configures a new Item. Zero values take defaults:
// Role defaults to user, Engine to none.
type Attrs struct {
	Role    Role
	Content string
	Engine  Engine
	Name    string
}

// New builds an Item from typed attributes.
// Returns ErrMissingContent if Content is empty, ErrInvalidRole or
// ErrInvalidEngine if a non-zero field is outside its enum.
func New(attrs Attrs) (Item, error) {
	if attrs.Content == "" {
		return Item{}, ErrMissingContent
	}
	role := attrs.Role
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	engine := attrs.Engine
	if engine == "" {
		engine = EngineNone
	}
	if !engine.Valid() {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidEngine, engine)
	}
	return Item{
		Role:    role,
		Content: attrs.Content,
		Engine:  engine,
		Name:    attrs.Name,
	}, nil
}

// MustNew builds an Item from typed attributes, panicking on error.
// Use for static message literals whose shape is known at compile time.
func MustNew(attrs Attrs) Item {
	item, err := New(attrs)
	if err != nil {
		panic(fmt.Sprintf("message.MustNew: %v", err))
	}
	return item
}

// FromMap builds an Item from a loosely typed map, such as one decoded
// from JSON. Role and engine arrive as strings and are coerced to their
// enum types. Both "role" and "content" are required; "engine" and
// "name" are optional.
func FromMap(m map[string]any) (Item, error) {
	roleStr, ok := stringField(m, "role")
	if !ok {
		return Item{}, ErrMissingRole
	}
	content, ok := stringField(m, "content")
	if !ok || content == "" {
		return Item{}, ErrMissingContent
	}

	role := Role(roleStr)
	if !role.Valid() {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidRole, roleStr)
	}

	engine := EngineNone
	if engineStr, ok := stringField(m, "engine"); ok && engineStr != "" {
		engine = Engine(engineStr)
		if !engine.Valid() {
			return Item{}, fmt.Errorf("%w: %q", ErrInvalidEngine, engineStr)
		}
	}

	name, _ := stringField(m, "name")

	return Item{Role: role, Content: content, Engine: engine, Name: name}, nil
}

// NewMultipart builds an Item whose content is a list of rich parts.
// Multipart messages always use the none engine.
func NewMultipart(role Role, parts []ContentPart) (Item, error) {
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if len(parts) == 0 {
		return Item{}, ErrMissingContent
	}
	copied := make([]ContentPart, len(parts))
	copy(copied, parts)
	return Item{Role: role, Parts: copied, Engine: EngineNone}, nil
}

// IsMultipart reports whether the item carries rich content parts.
func (i Item) IsMultipart() bool {
	return len(i.Parts) > 0
}

// Text returns the plain-text view of the item. For multipart items it
// concatenates the text parts.
func (i Item) Text() string {
	if !i.IsMultipart() {
		return i.Content
	}
	var text string
	for _, part := range i.Parts {
		if part.Type == PartText {
			text += part.Text
		}
	}
	return text
}

// stringField fetches a string-valued key from a loose map.
func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
