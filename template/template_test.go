package template

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/randalmurphal/promptkit/message"
)

func TestNew_Defaults(t *testing.T) {
	tmpl, err := New(Options{Text: "Hello, {{name}}!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Role != message.RoleUser {
		t.Errorf("expected default role user, got %q", tmpl.Role)
	}
	if tmpl.Engine != KindExpression {
		t.Errorf("expected expression engine, got %q", tmpl.Engine)
	}
	if tmpl.Version != 1 {
		t.Errorf("expected version 1, got %d", tmpl.Version)
	}
	if len(tmpl.History) != 0 {
		t.Errorf("expected empty history, got %v", tmpl.History)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "missing text",
			opts:    Options{},
			wantErr: ErrValidation,
		},
		{
			name:    "invalid role",
			opts:    Options{Text: "x", Role: "narrator"},
			wantErr: ErrValidation,
		},
		{
			name:    "unsupported engine",
			opts:    Options{Text: "x", Engine: "jinja"},
			wantErr: ErrValidation,
		},
		{
			name:    "negative version",
			opts:    Options{Text: "x", Version: -1},
			wantErr: ErrValidation,
		},
		{
			name:    "bad syntax caught at construction",
			opts:    Options{Text: "{{#if x}}unclosed"},
			wantErr: ErrSyntax,
		},
		{
			name: "valid with all options",
			opts: Options{
				Text:          "Hi {{name}}",
				Role:          message.RoleSystem,
				Engine:        KindExpression,
				Version:       3,
				DefaultInputs: map[string]any{"name": "there"},
				Cacheable:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
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

func TestNew_EagerEstimation(t *testing.T) {
	tmpl, err := New(Options{
		Text:         "Summarize: {{document}}",
		SampleInputs: map[string]any{"document": strings.Repeat("a", 100)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "Summarize: " + 100 chars = 111 runes, /4 = 27.75 -> 28
	if tmpl.EstimatedTokens != 28 {
		t.Errorf("expected 28 estimated tokens, got %d", tmpl.EstimatedTokens)
	}

	plain, _ := New(Options{Text: "no samples {{x}}"})
	if plain.EstimatedTokens != 0 {
		t.Errorf("expected 0 estimated tokens without samples, got %d", plain.EstimatedTokens)
	}
}

func TestFormat_DefaultInputsMerge(t *testing.T) {
	tmpl := MustNew(Options{
		Text:          "{{greeting}}, {{name}}!",
		DefaultInputs: map[string]any{"greeting": "Hello", "name": "there"},
	})

	// Defaults alone.
	got, err := tmpl.Format(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, there!" {
		t.Errorf("got %q, want %q", got, "Hello, there!")
	}

	// Caller inputs override defaults.
	got, err = tmpl.Format(map[string]any{"name": "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, Alice!" {
		t.Errorf("got %q, want %q", got, "Hello, Alice!")
	}

	// The template's stored defaults are not mutated by the merge.
	if tmpl.DefaultInputs["name"] != "there" {
		t.Error("Format mutated DefaultInputs")
	}
}

func TestFormat_Hooks(t *testing.T) {
	tmpl := MustNew(Options{Text: "Hello, {{name}}!"})

	got, err := tmpl.Format(
		map[string]any{"name": "alice"},
		WithPreHook(func(inputs map[string]any) map[string]any {
			inputs["name"] = strings.ToUpper(inputs["name"].(string))
			return inputs
		}),
		WithPostHook(strings.TrimSpace),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, ALICE!" {
		t.Errorf("got %q, want %q", got, "Hello, ALICE!")
	}
}

func TestFormat_RenderErrorClassification(t *testing.T) {
	tmpl := MustNew(Options{Text: "Hello, {{name}}!"})

	_, err := tmpl.Format(nil)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("expected ErrRender for missing input, got %v", err)
	}
	if errors.Is(err, ErrSyntax) {
		t.Fatal("render error must not classify as syntax error")
	}
}

func TestMustFormat_Panics(t *testing.T) {
	tmpl := MustNew(Options{Text: "Hello, {{name}}!"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	tmpl.MustFormat(nil)
}

func TestToMessage(t *testing.T) {
	tmpl := MustNew(Options{
		Text: "You are a {{persona}}.",
		Role: message.RoleSystem,
	})

	item, err := tmpl.ToMessage(map[string]any{"persona": "pirate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Role != message.RoleSystem {
		t.Errorf("expected system role, got %q", item.Role)
	}
	if item.Content != "You are a pirate." {
		t.Errorf("got %q", item.Content)
	}
	if item.Engine != message.EngineNone {
		t.Error("rendered message should not be re-templated")
	}
}

func TestIncrementVersion(t *testing.T) {
	tmpl := MustNew(Options{Text: "v1 text {{x}}"})

	v2 := tmpl.IncrementVersion()
	v3 := v2.IncrementVersion()

	if tmpl.Version != 1 || len(tmpl.History) != 0 {
		t.Error("original template mutated")
	}
	if v2.Version != 2 || v3.Version != 3 {
		t.Errorf("expected strictly increasing versions, got %d then %d", v2.Version, v3.Version)
	}
	if len(v2.History) != 1 || len(v3.History) != 2 {
		t.Fatalf("history should grow by one per increment: %d, %d",
			len(v2.History), len(v3.History))
	}
	// Newest first.
	if v3.History[0].Version != 2 || v3.History[1].Version != 1 {
		t.Errorf("unexpected history order: %+v", v3.History)
	}
}

func TestUpdateText(t *testing.T) {
	tmpl := MustNew(Options{Text: "original {{x}}"})

	updated := tmpl.UpdateText("updated {{x}}")

	if updated.Version != 2 {
		t.Errorf("expected version 2, got %d", updated.Version)
	}
	if updated.Text != "updated {{x}}" {
		t.Errorf("expected updated text, got %q", updated.Text)
	}
	if updated.History[0].Text != "original {{x}}" {
		t.Errorf("history should hold superseded text, got %q", updated.History[0].Text)
	}
	if tmpl.Text != "original {{x}}" {
		t.Error("original template mutated")
	}
}

func TestRollbackToVersion(t *testing.T) {
	tmpl := MustNew(Options{Text: "v1"})
	tmpl = tmpl.UpdateText("v2")
	tmpl = tmpl.UpdateText("v3")
	// Version 3, history: [{2, "v2"}, {1, "v1"}]

	rolled, err := tmpl.RollbackToVersion(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rolled.Text != "v1" {
		t.Errorf("expected restored text %q, got %q", "v1", rolled.Text)
	}
	// The live version counter is deliberately not reconciled.
	if rolled.Version != 3 {
		t.Errorf("rollback must not change the version counter, got %d", rolled.Version)
	}
	if len(rolled.History) != 1 || rolled.History[0].Version != 2 {
		t.Errorf("restored entry should be removed from history: %+v", rolled.History)
	}
}

func TestRollbackToVersion_NotFound(t *testing.T) {
	tmpl := MustNew(Options{Text: "v1"})
	tmpl = tmpl.UpdateText("v2")

	got, err := tmpl.RollbackToVersion(99)
	if !errors.Is(err, ErrRollbackNotFound) {
		t.Fatalf("expected ErrRollbackNotFound, got %v", err)
	}
	// Template is returned unchanged.
	if got.Text != tmpl.Text || got.Version != tmpl.Version || len(got.History) != len(tmpl.History) {
		t.Error("failed rollback must leave the template unchanged")
	}
}

func TestRecordUsage_RunningMeans(t *testing.T) {
	tmpl := MustNew(Options{Text: "x {{y}}"})

	tmpl = tmpl.RecordUsage(Metrics{TokensUsed: 100, Success: true})
	tmpl = tmpl.RecordUsage(Metrics{TokensUsed: 200})

	if tmpl.Stats.UsageCount != 2 {
		t.Errorf("expected usage count 2, got %d", tmpl.Stats.UsageCount)
	}
	if tmpl.Stats.AvgTokens != 150 {
		t.Errorf("expected avg tokens 150, got %v", tmpl.Stats.AvgTokens)
	}
	if tmpl.Stats.SuccessCount != 1 {
		t.Errorf("expected success count 1, got %d", tmpl.Stats.SuccessCount)
	}
	if tmpl.Stats.LastUsedAt.IsZero() {
		t.Error("expected LastUsedAt to be set")
	}
}

func TestRecordUsage_ResponseTime(t *testing.T) {
	tmpl := MustNew(Options{Text: "x {{y}}"})

	tmpl = tmpl.RecordUsage(Metrics{ResponseTime: 100 * time.Millisecond})
	tmpl = tmpl.RecordUsage(Metrics{ResponseTime: 300 * time.Millisecond})

	if tmpl.Stats.AvgResponseTime != 200*time.Millisecond {
		t.Errorf("expected avg 200ms, got %v", tmpl.Stats.AvgResponseTime)
	}
}

func TestRecordUsage_Immutable(t *testing.T) {
	tmpl := MustNew(Options{Text: "x {{y}}"})

	_ = tmpl.RecordUsage(Metrics{TokensUsed: 100})
	if tmpl.Stats.UsageCount != 0 {
		t.Error("RecordUsage mutated the receiver")
	}
}

func TestEstimateTokens(t *testing.T) {
	tmpl := MustNew(Options{
		Text:         "{{word}}",
		SampleInputs: map[string]any{"word": "12345678"},
	})

	// Explicit inputs win.
	if got := tmpl.EstimateTokens(map[string]any{"word": "1234"}); got != 1 {
		t.Errorf("expected 1 token, got %d", got)
	}
	// Falls back to sample inputs.
	if got := tmpl.EstimateTokens(nil); got != 2 {
		t.Errorf("expected 2 tokens from samples, got %d", got)
	}
}

func TestEstimateTokens_RenderFailureReturnsZero(t *testing.T) {
	tmpl := MustNew(Options{Text: "{{missing}}"})

	if got := tmpl.EstimateTokens(nil); got != 0 {
		t.Errorf("expected 0 on render failure, got %d", got)
	}
}
