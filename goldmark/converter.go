// Package goldmark converts markdown to HTML using the goldmark library.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docsite"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Converter implements docsite.Converter at compile time.
var _ docsite.Converter = (*Converter)(nil)

// Converter renders markdown as HTML. GFM extensions cover tables,
// strikethrough and autolinks on top of CommonMark headings, paragraphs,
// emphasis, lists, links, fenced/inline code and blockquotes.
//
// Raw HTML passes through unescaped here; stripping script-executing
// constructs is the sanitizer's job.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Converter{md: md}
}

// Convert transforms markdown content into HTML. Malformed markdown
// degrades to best-effort HTML rather than erroring: goldmark treats any
// input as valid CommonMark.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", docsite.Errorf(docsite.EINTERNAL, "markdown conversion failed: %v", err)
	}
	return buf.String(), nil
}
