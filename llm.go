package main

import (
	"context"
	"fmt"
	"log"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash-exp"
const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

type LLMUsage struct {
	InputTokens  int64
	OutputTokens int64
}

func (u LLMUsage) TotalTokens() int64 {
	return u.InputTokens + u.OutputTokens
}

func (u *LLMUsage) Add(other LLMUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// TextGenerator is the one seam to the generative model: a prompt goes in,
// the raw text reply comes out. Built once at startup and injected into the
// rewrite and analysis services, so tests can substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, LLMUsage, error)
}

// NewTextGenerator builds the provider selected by config. LoadConfig has
// already verified the matching API key is present.
func NewTextGenerator(cfg Config) (TextGenerator, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		return newAnthropicGenerator(cfg), nil
	default:
		return newGeminiGenerator(cfg)
	}
}

// --- Gemini ---

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(cfg Config) (*geminiGenerator, error) {
	model := cfg.LLMModel
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newUpstreamHTTPClient(cfg.UpstreamTimeoutSeconds),
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, LLMUsage, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("llm gemini error: %v", err)
		return "", LLMUsage{}, fmt.Errorf("Gemini API error: %w", err)
	}

	usage := LLMUsage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int64(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
	}

	text := resp.Text()
	if text == "" {
		return "", usage, fmt.Errorf("no text content in Gemini response")
	}
	log.Printf("llm gemini model=%s response size=%d tokens_in=%d tokens_out=%d", g.model, len(text), usage.InputTokens, usage.OutputTokens)
	return text, usage, nil
}

// --- Anthropic ---

type anthropicGenerator struct {
	client anthropic.Client
	model  string
}

func newAnthropicGenerator(cfg Config) *anthropicGenerator {
	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithHTTPClient(newUpstreamHTTPClient(cfg.UpstreamTimeoutSeconds)),
	)
	return &anthropicGenerator{client: client, model: model}
}

func (a *anthropicGenerator) Generate(ctx context.Context, prompt string) (string, LLMUsage, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Printf("llm anthropic error: %v", err)
		return "", LLMUsage{}, fmt.Errorf("Anthropic API error: %w", err)
	}
	usage := LLMUsage{
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm anthropic model=%s response size=%d tokens_in=%d tokens_out=%d", a.model, len(block.Text), usage.InputTokens, usage.OutputTokens)
			return block.Text, usage, nil
		}
	}
	return "", usage, fmt.Errorf("no text content in Anthropic response")
}
