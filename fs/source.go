// Package fs provides a local-directory implementation of docsite.Source.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsite"
)

// navFile is the navigation tree asset produced by the external build step.
const navFile = "nav.json"

// Ensure Source implements docsite.Source at compile time.
var _ docsite.Source = (*Source)(nil)

// Source reads documents from a local docs directory. A route maps to
// <dir>/<route>.md.
type Source struct {
	dir string
}

// NewSource creates a new Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// ReadDocument reads the raw markdown for a route.
// Returns ENOTFOUND if the file does not exist and EINVALID if the route
// escapes the docs directory.
func (s *Source) ReadDocument(ctx context.Context, route string) (string, error) {
	if route == "" {
		return "", docsite.Errorf(docsite.EINVALID, "invalid route %q", route)
	}

	rel := filepath.FromSlash(strings.TrimLeft(route, "/")) + ".md"
	if !filepath.IsLocal(rel) {
		return "", docsite.Errorf(docsite.EINVALID, "invalid route %q", route)
	}

	return s.read(filepath.Join(s.dir, rel), route)
}

// ReadNavigation reads the navigation tree JSON from the docs directory.
func (s *Source) ReadNavigation(ctx context.Context) (string, error) {
	return s.read(filepath.Join(s.dir, navFile), navFile)
}

func (s *Source) read(path, name string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", docsite.Errorf(docsite.ENOTFOUND, "document %q not found", name)
		}
		return "", err
	}
	return string(content), nil
}
