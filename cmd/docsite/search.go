package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", r.Route, r.MatchType, r.Breadcrumb)
		for _, snippet := range r.ContentMatches {
			fmt.Fprintf(deps.Stdout, "    …%s…\n", snippet)
		}
	}

	return nil
}
