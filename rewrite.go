package main

import (
	"context"
	"fmt"
	"log"
)

// RewriteRequest carries one rewrite action. Style drives a translation-style
// rewrite; Action "tone" with a Tone switches to a tone adjustment instead.
type RewriteRequest struct {
	Text           string
	Style          string
	Action         string
	Tone           string
	IsSelectedText bool
}

// Rewriter wraps the model client for style and tone rewrites.
type Rewriter struct {
	gen TextGenerator
}

func NewRewriter(gen TextGenerator) *Rewriter {
	return &Rewriter{gen: gen}
}

// Rewrite sends the text to the model and returns the reply verbatim: no
// trimming, no post-processing. Upstream failures are logged in full and
// surfaced to the caller as a generic error.
func (r *Rewriter) Rewrite(ctx context.Context, req RewriteRequest) (string, LLMUsage, error) {
	var prompt string
	if req.Action == "tone" && req.Tone != "" {
		prompt = BuildTonePrompt(req.Tone, req.Text, req.IsSelectedText)
	} else {
		prompt = BuildRewritePrompt(req.Style, req.Text, req.IsSelectedText)
	}

	text, usage, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("rewrite error style=%s action=%s tone=%s: %v", req.Style, req.Action, req.Tone, err)
		return "", usage, fmt.Errorf("failed to rewrite text")
	}
	return text, usage, nil
}
