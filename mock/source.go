package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

var _ docsite.Source = (*Source)(nil)

// Source is a mock implementation of docsite.Source.
type Source struct {
	ReadDocumentFn   func(ctx context.Context, route string) (string, error)
	ReadNavigationFn func(ctx context.Context) (string, error)
}

func (s *Source) ReadDocument(ctx context.Context, route string) (string, error) {
	return s.ReadDocumentFn(ctx, route)
}

func (s *Source) ReadNavigation(ctx context.Context) (string, error) {
	return s.ReadNavigationFn(ctx)
}
