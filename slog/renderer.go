// Package slog provides logging decorators for docsite domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure LoggingRenderer implements docsite.Renderer.
var _ docsite.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with render timing and error logging.
type LoggingRenderer struct {
	next   docsite.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next docsite.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the outcome.
func (r *LoggingRenderer) Render(ctx context.Context, route string) (*docsite.Document, error) {
	begin := time.Now()
	doc, err := r.next.Render(ctx, route)
	if err != nil {
		r.logger.Warn("render failed",
			"route", route,
			"code", docsite.ErrorCode(err),
			"error", docsite.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Debug("render",
		"route", route,
		"headings", len(doc.Headings),
		"duration", time.Since(begin),
	)
	return doc, nil
}
