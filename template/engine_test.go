package template

import (
	"errors"
	"strings"
	"testing"
)

func TestEngine_Render_SimpleVariables(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		template string
		assigns  map[string]any
		want     string
		wantErr  error
	}{
		{
			name:     "single variable",
			template: "Hello, {{name}}!",
			assigns:  map[string]any{"name": "World"},
			want:     "Hello, World!",
		},
		{
			name:     "multiple variables",
			template: "{{greeting}}, {{name}}!",
			assigns:  map[string]any{"greeting": "Hi", "name": "Alice"},
			want:     "Hi, Alice!",
		},
		{
			name:     "variable with underscore",
			template: "Task: {{task_id}}",
			assigns:  map[string]any{"task_id": "TK-123"},
			want:     "Task: TK-123",
		},
		{
			name:     "missing variable is a render error",
			template: "Hello, {{name}}!",
			assigns:  map[string]any{},
			wantErr:  ErrRender,
		},
		{
			name:     "no variables with nil assigns",
			template: "Hello, World!",
			assigns:  nil,
			want:     "Hello, World!",
		},
		{
			name:     "empty template",
			template: "",
			wantErr:  ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.assigns)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Render_Conditionals(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		template string
		assigns  map[string]any
		want     string
	}{
		{
			name:     "if true",
			template: "{{#if urgent}}URGENT: {{/if}}Task",
			assigns:  map[string]any{"urgent": true},
			want:     "URGENT: Task",
		},
		{
			name:     "if false",
			template: "{{#if urgent}}URGENT: {{/if}}Task",
			assigns:  map[string]any{"urgent": false},
			want:     "Task",
		},
		{
			name:     "if with else",
			template: "Status: {{#if done}}Complete{{else}}Pending{{/if}}",
			assigns:  map[string]any{"done": false},
			want:     "Status: Pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.assigns)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Render_Iteration(t *testing.T) {
	e := NewEngine()

	got, err := e.Render("{{#each items}}{{.}} {{/each}}",
		map[string]any{"items": []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a b c " {
		t.Errorf("got %q, want %q", got, "a b c ")
	}
}

func TestEngine_Render_Helpers(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		template string
		assigns  map[string]any
		want     string
	}{
		{
			name:     "upper",
			template: "{{upper name}}",
			assigns:  map[string]any{"name": "alice"},
			want:     "ALICE",
		},
		{
			name:     "truncate",
			template: "{{truncate description 10}}",
			assigns:  map[string]any{"description": "a very long description"},
			want:     "a very ...",
		},
		{
			name:     "join",
			template: `{{join parts ", "}}`,
			assigns:  map[string]any{"parts": []string{"x", "y"}},
			want:     "x, y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.assigns)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Compile(t *testing.T) {
	e := NewEngine()

	if err := e.Compile("Hello, {{name}}!"); err != nil {
		t.Fatalf("valid template should compile: %v", err)
	}

	err := e.Compile("{{#if x}}unclosed")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}

	if err := e.Compile(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestEngine_Compile_DoesNotNeedInputs(t *testing.T) {
	e := NewEngine()

	// Compile succeeds even though rendering without inputs would fail.
	tmpl := "Hello, {{name}}!"
	if err := e.Compile(tmpl); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, err := e.Render(tmpl, nil); !errors.Is(err, ErrRender) {
		t.Fatal("render without inputs should fail with ErrRender")
	}
}

func TestEngine_Variables(t *testing.T) {
	e := NewEngine()

	vars, err := e.Variables("{{greeting}}, {{name}}! {{#if name}}hi{{/if}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"greeting", "name"}
	if len(vars) != len(want) {
		t.Fatalf("got %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("got %v, want %v", vars, want)
			break
		}
	}
}

func TestEngine_AddFunc(t *testing.T) {
	e := NewEngine()
	e.AddFunc("shout", func(s string) string { return strings.ToUpper(s) + "!" })

	got, err := e.Render("{{shout .word}}", map[string]any{"word": "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "GO!" {
		t.Errorf("got %q, want %q", got, "GO!")
	}
}
