package main

import (
	"context"
	"errors"
	"testing"
)

func TestRewriteReturnsReplyVerbatim(t *testing.T) {
	// Replies are not trimmed or post-processed.
	gen := &stubGenerator{reply: "  नमस्ते दुनिया \n"}
	rewriter := NewRewriter(gen)

	got, _, err := rewriter.Rewrite(context.Background(), RewriteRequest{Text: "hello world", Style: StyleHindi})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if got != "  नमस्ते दुनिया \n" {
		t.Fatalf("expected verbatim reply, got %q", got)
	}
	if gen.lastPrompt != BuildRewritePrompt(StyleHindi, "hello world", false) {
		t.Fatalf("unexpected prompt: %q", gen.lastPrompt)
	}
}

func TestRewriteToneActionUsesTonePrompt(t *testing.T) {
	gen := &stubGenerator{reply: "adjusted"}
	rewriter := NewRewriter(gen)

	_, _, err := rewriter.Rewrite(context.Background(), RewriteRequest{
		Text:   "my draft",
		Style:  StyleHindi,
		Action: "tone",
		Tone:   "assertive",
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if gen.lastPrompt != BuildTonePrompt("assertive", "my draft", false) {
		t.Fatalf("expected tone prompt, got %q", gen.lastPrompt)
	}
}

func TestRewriteToneActionWithoutToneFallsBackToStyle(t *testing.T) {
	gen := &stubGenerator{reply: "rewritten"}
	rewriter := NewRewriter(gen)

	_, _, err := rewriter.Rewrite(context.Background(), RewriteRequest{
		Text:   "my draft",
		Style:  StyleEnglish,
		Action: "tone",
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if gen.lastPrompt != BuildRewritePrompt(StyleEnglish, "my draft", false) {
		t.Fatalf("expected style prompt fallback, got %q", gen.lastPrompt)
	}
}

func TestRewriteWrapsUpstreamError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream exploded: key details inside")}
	rewriter := NewRewriter(gen)

	_, _, err := rewriter.Rewrite(context.Background(), RewriteRequest{Text: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	// The upstream cause is logged, not surfaced.
	if err.Error() != "failed to rewrite text" {
		t.Fatalf("expected generic error, got %q", err.Error())
	}
}
