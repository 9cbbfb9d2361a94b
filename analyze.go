package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
)

// Analyzer wraps the model client for content analysis. The model is asked
// for strict JSON; whatever comes back is decoded best-effort and a fixed
// default takes the place of anything unparseable, so a successful model call
// never turns into an error for the caller.
type Analyzer struct {
	gen TextGenerator
}

func NewAnalyzer(gen TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// DefaultAnalysisResult is the payload returned when the model's reply cannot
// be parsed into the expected shape.
func DefaultAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Suggestions: SuggestionScores{
			Correctness: 0.5,
			Clarity:     0.5,
			Engagement:  0.5,
			Delivery:    0.5,
		},
		SEO: SEOResult{
			Score:       0.5,
			Suggestions: []string{"Could not analyze text. Please try again."},
		},
		Analysis: "Analysis not available.",
	}
}

// Analyze runs the analysis prompt. Transport failures propagate as a generic
// error; parse failures of a successful call are absorbed and replaced by the
// default result.
func (a *Analyzer) Analyze(ctx context.Context, text string) (AnalysisResult, LLMUsage, error) {
	raw, usage, err := a.gen.Generate(ctx, analysisPrompt(text))
	if err != nil {
		log.Printf("analyze error: %v", err)
		return AnalysisResult{}, usage, fmt.Errorf("failed to analyze content")
	}

	result, parseErr := ParseAnalysisResponse(raw)
	if parseErr != nil {
		log.Printf("analyze parse error (using defaults): %v", parseErr)
		return DefaultAnalysisResult(), usage, nil
	}
	return result, usage, nil
}

var newlineRuns = regexp.MustCompile(`\n+`)

// ParseAnalysisResponse decodes a raw model reply into an AnalysisResult.
// It strips code fences, collapses newlines, extracts the outermost JSON
// object, validates that every required field is present, clamps every score
// into [0,1] and coerces SEO suggestions to strings.
func ParseAnalysisResponse(raw string) (AnalysisResult, error) {
	cleaned := strings.ReplaceAll(raw, "```json\n", "")
	cleaned = strings.ReplaceAll(cleaned, "```\n", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = newlineRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	obj := extractJSONObject(cleaned)
	if obj == "" {
		return AnalysisResult{}, fmt.Errorf("no JSON object in response: %s", truncateForLog(cleaned))
	}

	var parsed struct {
		Suggestions *struct {
			Correctness *float64 `json:"correctness"`
			Clarity     *float64 `json:"clarity"`
			Engagement  *float64 `json:"engagement"`
			Delivery    *float64 `json:"delivery"`
		} `json:"suggestions"`
		SEO *struct {
			Score       *float64 `json:"score"`
			Suggestions []any    `json:"suggestions"`
		} `json:"seo"`
		Analysis *string `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return AnalysisResult{}, fmt.Errorf("parsing analysis response: %w (response: %s)", err, truncateForLog(obj))
	}

	if parsed.Suggestions == nil ||
		parsed.Suggestions.Correctness == nil ||
		parsed.Suggestions.Clarity == nil ||
		parsed.Suggestions.Engagement == nil ||
		parsed.Suggestions.Delivery == nil ||
		parsed.SEO == nil ||
		parsed.SEO.Score == nil ||
		parsed.SEO.Suggestions == nil ||
		parsed.Analysis == nil {
		return AnalysisResult{}, fmt.Errorf("invalid analysis response structure: %s", truncateForLog(obj))
	}

	suggestions := make([]string, 0, len(parsed.SEO.Suggestions))
	for _, v := range parsed.SEO.Suggestions {
		suggestions = append(suggestions, coerceString(v))
	}

	return AnalysisResult{
		Suggestions: SuggestionScores{
			Correctness: clampScore(*parsed.Suggestions.Correctness),
			Clarity:     clampScore(*parsed.Suggestions.Clarity),
			Engagement:  clampScore(*parsed.Suggestions.Engagement),
			Delivery:    clampScore(*parsed.Suggestions.Delivery),
		},
		SEO: SEOResult{
			Score:       clampScore(*parsed.SEO.Score),
			Suggestions: suggestions,
		},
		Analysis: *parsed.Analysis,
	}, nil
}

// extractJSONObject returns the substring from the first '{' to the last '}',
// the same greedy match the model-reply cleanup has always used. Returns ""
// when no such pair exists.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == math.Trunc(x) {
			return fmt.Sprintf("%.0f", x)
		}
		return fmt.Sprintf("%v", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func truncateForLog(s string) string {
	if len(s) > 512 {
		return s[:512] + fmt.Sprintf("... [truncated, total_length=%d]", len(s))
	}
	return s
}
