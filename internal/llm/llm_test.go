package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"household-hub/internal/shared"
)

// --- Mock TextGenerator ---

type mockTextGenerator struct {
	response string
	err      error
	prompts  []string
	usage    shared.TokenUsage
}

func (m *mockTextGenerator) GenerateContent(_ context.Context, prompt string) (ContentResponse, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return ContentResponse{}, m.err
	}
	return ContentResponse{Content: m.response, Usage: m.usage}, nil
}

func TestCategorizeDepartment(t *testing.T) {
	t.Run("valid department", func(t *testing.T) {
		gen := &mockTextGenerator{response: `{"department": "Produce"}`}
		got, err := CategorizeDepartment(context.Background(), gen, "tomato")
		if err != nil {
			t.Fatalf("CategorizeDepartment failed: %v", err)
		}
		if got != "Produce" {
			t.Errorf("got %q, want Produce", got)
		}
		if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "tomato") {
			t.Error("expected the ingredient name in the prompt")
		}
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		gen := &mockTextGenerator{response: `{"department": "dairy"}`}
		got, err := CategorizeDepartment(context.Background(), gen, "milk")
		if err != nil {
			t.Fatalf("CategorizeDepartment failed: %v", err)
		}
		if got != "Dairy" {
			t.Errorf("got %q, want canonical Dairy", got)
		}
	})

	t.Run("unknown department falls back to Other", func(t *testing.T) {
		gen := &mockTextGenerator{response: `{"department": "Spices & Potions"}`}
		got, err := CategorizeDepartment(context.Background(), gen, "saffron")
		if err != nil {
			t.Fatalf("CategorizeDepartment failed: %v", err)
		}
		if got != "Other" {
			t.Errorf("got %q, want Other", got)
		}
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		gen := &mockTextGenerator{response: "probably Produce?"}
		if _, err := CategorizeDepartment(context.Background(), gen, "tomato"); err == nil {
			t.Error("expected error for non-JSON response")
		}
	})
}

func TestSuggestDinners(t *testing.T) {
	t.Run("parses suggestions", func(t *testing.T) {
		gen := &mockTextGenerator{response: `{"suggestions": [
			{"name": "Chicken Fajitas", "reason": "Quick and kid friendly"},
			{"name": "Minestrone", "reason": "Uses up vegetables"}
		]}`}
		got, err := SuggestDinners(context.Background(), gen, SuggestionRequest{
			KnownRecipes: []string{"Spaghetti al Pomodoro"},
			Cuisine:      "Italian",
			Count:        2,
		})
		if err != nil {
			t.Fatalf("SuggestDinners failed: %v", err)
		}
		if len(got) != 2 || got[0].Name != "Chicken Fajitas" {
			t.Errorf("unexpected suggestions: %v", got)
		}

		prompt := gen.prompts[0]
		if !strings.Contains(prompt, "Spaghetti al Pomodoro") {
			t.Error("expected known recipes in the prompt")
		}
		if !strings.Contains(prompt, "Italian") {
			t.Error("expected cuisine preference in the prompt")
		}
	})

	t.Run("generator error propagates", func(t *testing.T) {
		gen := &mockTextGenerator{err: fmt.Errorf("quota exceeded")}
		if _, err := SuggestDinners(context.Background(), gen, SuggestionRequest{}); err == nil {
			t.Error("expected error")
		}
	})
}

// --- Metered decorator ---

type recordedMeta struct {
	metas []shared.AgentMeta
}

func (r *recordedMeta) RecordMeta(meta shared.AgentMeta) error {
	r.metas = append(r.metas, meta)
	return nil
}

func TestWithMetricsRecordsUsage(t *testing.T) {
	gen := &mockTextGenerator{
		response: "{}",
		usage:    shared.TokenUsage{PromptTokens: 10, CompletionTokens: 5, Model: "gemini-2.0-flash"},
	}
	recorder := &recordedMeta{}
	metered := WithMetrics(gen, recorder, "tester", nil)

	if _, err := metered.GenerateContent(context.Background(), "hello"); err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if len(recorder.metas) != 1 {
		t.Fatalf("expected 1 recorded meta, got %d", len(recorder.metas))
	}
	meta := recorder.metas[0]
	if meta.AgentName != "tester" || meta.Usage.PromptTokens != 10 {
		t.Errorf("unexpected meta: %+v", meta)
	}
}

func TestWithMetricsSkipsFailedCalls(t *testing.T) {
	gen := &mockTextGenerator{err: fmt.Errorf("boom")}
	recorder := &recordedMeta{}
	metered := WithMetrics(gen, recorder, "tester", nil)

	if _, err := metered.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	if len(recorder.metas) != 0 {
		t.Error("failed calls must not be recorded")
	}
}
