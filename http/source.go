// Package http provides HTTP-based access to a statically hosted document
// tree and the site server that exposes rendered documents, search and
// navigation over HTTP.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docsite"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// navFile is the navigation tree asset produced by the external build step.
const navFile = "nav.json"

// Ensure Source implements docsite.Source at compile time.
var _ docsite.Source = (*Source)(nil)

// Source retrieves raw markdown by route from a static docs base URL.
// A route maps deterministically to <base>/<route>.md.
type Source struct {
	client  *http.Client
	base    string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithRateLimit throttles requests to at most rps per second with no
// bursting. Useful when priming the search index against a shared host.
func WithRateLimit(rps float64) Option {
	return func(s *Source) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSource creates a new Source reading from the given docs base URL.
func NewSource(baseURL string, opts ...Option) *Source {
	s := &Source{
		base:    strings.TrimRight(baseURL, "/"),
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// ReadDocument fetches the raw markdown for a route.
// Returns ENOTFOUND for any non-success response status.
func (s *Source) ReadDocument(ctx context.Context, route string) (string, error) {
	if route == "" || strings.Contains(route, "..") {
		return "", docsite.Errorf(docsite.EINVALID, "invalid route %q", route)
	}
	return s.get(ctx, s.base+"/"+strings.TrimLeft(route, "/")+".md", route)
}

// ReadNavigation fetches the navigation tree JSON from the docs base.
func (s *Source) ReadNavigation(ctx context.Context) (string, error) {
	return s.get(ctx, s.base+"/"+navFile, navFile)
}

func (s *Source) get(ctx context.Context, url, name string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", docsite.Errorf(docsite.ENOTFOUND, "document %q not found (HTTP %d)", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
