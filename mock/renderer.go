package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

var _ docsite.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docsite.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, route string) (*docsite.Document, error)
}

func (r *Renderer) Render(ctx context.Context, route string) (*docsite.Document, error) {
	return r.RenderFn(ctx, route)
}
