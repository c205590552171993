package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsite"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	doc, err := deps.Renderer.Render(deps.Ctx, c.Route)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}

	if len(doc.Headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings.")
		return nil
	}

	for _, h := range doc.Headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", indent, h.Text, h.ID)
	}

	return nil
}
