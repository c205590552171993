package docsite

import (
	"context"
	"strings"
	"unicode"
)

// MatchType classifies where a search query matched a document.
type MatchType string

// MatchType constants for SearchResult.
const (
	MatchTitle   MatchType = "title"
	MatchContent MatchType = "content"
	MatchBoth    MatchType = "both"
)

// SearchResult represents a single document matching a query. Results are
// ephemeral: produced per query, never stored.
type SearchResult struct {
	Route          string    `json:"route"`
	Label          string    `json:"label"`
	Breadcrumb     string    `json:"breadcrumb"`
	ContentMatches []string  `json:"contentMatches,omitempty"`
	MatchType      MatchType `json:"matchType"`
}

// Searcher runs free-text queries over the document set.
type Searcher interface {
	// Search returns results ranked by match tier (both > title > content),
	// preserving navigation order within a tier. An empty or whitespace-only
	// query returns no results and no error.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// SnippetRadius is the number of runes of context kept on each side of a
// match occurrence in a snippet.
const SnippetRadius = 60

// ExtractSnippets returns up to limit excerpts of text, each a bounded
// window centered on a case-insensitive occurrence of query. Occurrences
// falling inside an earlier window are merged into it rather than producing
// a duplicate snippet. Ellipses at the window edges are left to the caller.
func ExtractSnippets(text, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	// Rune-wise folding keeps offsets aligned between text and its
	// lowered form, unlike strings.ToLower.
	src := []rune(text)
	lower := []rune(strings.Map(unicode.ToLower, text))
	q := []rune(strings.Map(unicode.ToLower, query))
	if len(q) == 0 || len(q) > len(lower) {
		return nil
	}

	var snippets []string
	windowEnd := 0
	for i := 0; i+len(q) <= len(lower) && len(snippets) < limit; i++ {
		if !runesEqual(lower[i:i+len(q)], q) {
			continue
		}
		if len(snippets) > 0 && i < windowEnd {
			continue
		}

		start := i - SnippetRadius
		if start < 0 {
			start = 0
		}
		end := i + len(q) + SnippetRadius
		if end > len(src) {
			end = len(src)
		}
		snippets = append(snippets, strings.TrimSpace(string(src[start:end])))
		windowEnd = end
	}

	return snippets
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
