package message

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	item, err := New(Attrs{Content: "Hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Role != RoleUser {
		t.Errorf("expected default role user, got %q", item.Role)
	}
	if item.Engine != EngineNone {
		t.Errorf("expected default engine none, got %q", item.Engine)
	}
	if item.Content != "Hello" {
		t.Errorf("expected content %q, got %q", "Hello", item.Content)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		attrs   Attrs
		wantErr error
	}{
		{
			name:    "missing content",
			attrs:   Attrs{Role: RoleUser},
			wantErr: ErrMissingContent,
		},
		{
			name:    "invalid role",
			attrs:   Attrs{Role: "moderator", Content: "x"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "invalid engine",
			attrs:   Attrs{Content: "x", Engine: "jinja"},
			wantErr: ErrInvalidEngine,
		},
		{
			name:  "explicit function role",
			attrs: Attrs{Role: RoleFunction, Content: "result", Name: "lookup"},
		},
		{
			name:  "template engine",
			attrs: Attrs{Content: "Hi {{name}}", Engine: EngineTemplate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.attrs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    Item
		wantErr error
	}{
		{
			name:  "role and content",
			input: map[string]any{"role": "assistant", "content": "Hi"},
			want:  Item{Role: RoleAssistant, Content: "Hi", Engine: EngineNone},
		},
		{
			name: "engine coerced",
			input: map[string]any{
				"role": "user", "content": "Hi {{name}}", "engine": "template",
			},
			want: Item{Role: RoleUser, Content: "Hi {{name}}", Engine: EngineTemplate},
		},
		{
			name: "function name carried",
			input: map[string]any{
				"role": "function", "content": "42", "name": "calc",
			},
			want: Item{Role: RoleFunction, Content: "42", Engine: EngineNone, Name: "calc"},
		},
		{
			name:    "missing role",
			input:   map[string]any{"content": "Hi"},
			wantErr: ErrMissingRole,
		},
		{
			name:    "missing content",
			input:   map[string]any{"role": "user"},
			wantErr: ErrMissingContent,
		},
		{
			name:    "non-string content",
			input:   map[string]any{"role": "user", "content": 42},
			wantErr: ErrMissingContent,
		},
		{
			name:    "unknown role",
			input:   map[string]any{"role": "narrator", "content": "Hi"},
			wantErr: ErrInvalidRole,
		},
		{
			name: "unknown engine",
			input: map[string]any{
				"role": "user", "content": "Hi", "engine": "mustache",
			},
			wantErr: ErrInvalidEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMap(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewMultipart(t *testing.T) {
	parts := []ContentPart{
		TextPart("look at this"),
		ImagePart("https://example.com/a.png"),
		FilePart("https://example.com/b.pdf"),
	}

	item, err := NewMultipart(RoleUser, parts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.IsMultipart() {
		t.Fatal("expected multipart item")
	}
	if len(item.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(item.Parts))
	}
	if item.Parts[0].Type != PartText || item.Parts[1].Type != PartImageURL || item.Parts[2].Type != PartFileURL {
		t.Errorf("unexpected part types: %+v", item.Parts)
	}

	// The item owns its own copy of the slice.
	parts[0].Text = "mutated"
	if item.Parts[0].Text != "look at this" {
		t.Error("item parts aliased the caller's slice")
	}
}

func TestNewMultipart_Empty(t *testing.T) {
	_, err := NewMultipart(RoleUser, nil)
	if !errors.Is(err, ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent, got %v", err)
	}
}

func TestItem_Text(t *testing.T) {
	plain := MustNew(Attrs{Content: "hello"})
	if plain.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", plain.Text())
	}

	multi, _ := NewMultipart(RoleUser, []ContentPart{
		TextPart("a"),
		ImagePart("https://example.com/x.png"),
		TextPart("b"),
	})
	if multi.Text() != "ab" {
		t.Errorf("expected %q, got %q", "ab", multi.Text())
	}
}
