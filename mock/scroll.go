package mock

import "github.com/fwojciec/docsite"

var _ docsite.ScrollSource = (*ScrollSource)(nil)

// ScrollSource is a mock implementation of docsite.ScrollSource.
type ScrollSource struct {
	SubscribeFn func(fn func(offsets map[string]float64)) func()
}

func (s *ScrollSource) Subscribe(fn func(offsets map[string]float64)) func() {
	return s.SubscribeFn(fn)
}
