package main

import (
	"context"
	"testing"
)

// stubGenerator is the test double for the model seam. It records the last
// prompt and returns a canned reply (or error).
type stubGenerator struct {
	reply      string
	err        error
	usage      LLMUsage
	lastPrompt string
	calls      int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, LLMUsage, error) {
	s.lastPrompt = prompt
	s.calls++
	if s.err != nil {
		return "", s.usage, s.err
	}
	return s.reply, s.usage, nil
}

func TestLLMUsageAdd(t *testing.T) {
	u := LLMUsage{InputTokens: 10, OutputTokens: 5}
	u.Add(LLMUsage{InputTokens: 3, OutputTokens: 2})
	if u.InputTokens != 13 || u.OutputTokens != 7 {
		t.Fatalf("unexpected usage after Add: %+v", u)
	}
	if u.TotalTokens() != 20 {
		t.Fatalf("unexpected total tokens: %d", u.TotalTokens())
	}
}

func TestNewAnthropicGeneratorDefaults(t *testing.T) {
	gen := newAnthropicGenerator(Config{AnthropicAPIKey: "sk-test"})
	if gen.model != defaultAnthropicModel {
		t.Fatalf("expected default model %q, got %q", defaultAnthropicModel, gen.model)
	}

	gen = newAnthropicGenerator(Config{AnthropicAPIKey: "sk-test", LLMModel: "claude-haiku-4-5"})
	if gen.model != "claude-haiku-4-5" {
		t.Fatalf("expected configured model, got %q", gen.model)
	}
}
