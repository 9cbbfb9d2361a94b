package main

import "time"

// UsageStats is the estimated usage for a piece of text. Token counts and cost
// are derived from the word count, not measured against a real tokenizer.
type UsageStats struct {
	WordCount  int     `json:"wordCount"`
	TokenCount int     `json:"tokenCount"`
	Cost       float64 `json:"cost"`
}

func (s *UsageStats) Add(other UsageStats) {
	s.WordCount += other.WordCount
	s.TokenCount += other.TokenCount
	s.Cost += other.Cost
}

// HistoryItem is one completed rewrite. Immutable once created.
type HistoryItem struct {
	OriginalText  string    `json:"originalText"`
	RewrittenText string    `json:"rewrittenText"`
	Timestamp     time.Time `json:"timestamp"`
}

// DailyData aggregates one calendar day's rewrites: the history is newest
// first, and Stats is the running sum of CalculateStats over each item's
// original text.
type DailyData struct {
	History []HistoryItem `json:"history"`
	Stats   UsageStats    `json:"stats"`
}

// Document is one editable document. Exactly one document is "current" from
// the editor's point of view; the server just stores the list.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

// AnalysisResult is the fixed-shape output of the analysis service. All
// numeric scores are clamped into [0,1] before this struct is returned.
type AnalysisResult struct {
	Suggestions SuggestionScores `json:"suggestions"`
	SEO         SEOResult        `json:"seo"`
	Analysis    string           `json:"analysis"`
}

type SuggestionScores struct {
	Correctness float64 `json:"correctness"`
	Clarity     float64 `json:"clarity"`
	Engagement  float64 `json:"engagement"`
	Delivery    float64 `json:"delivery"`
}

type SEOResult struct {
	Score       float64  `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// DateKey returns the ISO calendar-date key used for daily aggregates.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
