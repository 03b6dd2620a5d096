package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model                string
		calls, input, output int
		want                 float64
	}{
		{"gemini-flash-lite-latest", 3, 1_000_000, 1_000_000, 0.5},
		{"claude-haiku-4-5", 1, 2_000, 1_000, 0.007},
		{"imagen-4.0-generate-001", 5, 0, 0, 0.2},
		{"imagen-4.0-fast-generate-001", 5, 0, 0, 0.1},
		{"dall-e-3", 3, 0, 0, 0.12},
		{"openai/gpt-4o-mini", 1, 1_000_000, 0, 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if c == nil {
				t.Fatalf("no pricing for %q", tt.model)
			}
			got := c.Estimate(tt.calls, tt.input, tt.output)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Estimate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupCost_Unknown(t *testing.T) {
	for _, model := range []string{"", "mock", "someone/unpriced-model"} {
		if c := LookupCost(model); c != nil {
			t.Errorf("LookupCost(%q) = %+v, want nil", model, c)
		}
	}
}

func TestLookupCost_ResolvedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	for _, model := range []string{
		resolveModel(cfg.Gemini.Model, geminiModels),
		resolveModel(cfg.Gemini.ImageModel, geminiModels),
		resolveModel(cfg.OpenAI.Model, openaiModels),
		resolveModel(cfg.OpenAI.ImageModel, openaiModels),
		resolveModel(cfg.Anthropic.Model, anthropicModels),
		cfg.OpenRouter.Model,
	} {
		if LookupCost(model) == nil {
			t.Errorf("default model %q has no pricing", model)
		}
	}
}
