package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure LoggingSearcher implements docsite.Searcher.
var _ docsite.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with query timing logging.
type LoggingSearcher struct {
	next   docsite.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docsite.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string) ([]docsite.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query)
	if err != nil {
		s.logger.Warn("search failed",
			"query", query,
			"error", docsite.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("search",
		"query", query,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
