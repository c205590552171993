package mock

import "github.com/fwojciec/docsite"

var _ docsite.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsite.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}

var _ docsite.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of docsite.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

var _ docsite.Processor = (*Processor)(nil)

// Processor is a mock implementation of docsite.Processor.
type Processor struct {
	ProcessFn func(html string) (*docsite.Processed, error)
}

func (p *Processor) Process(html string) (*docsite.Processed, error) {
	return p.ProcessFn(html)
}
