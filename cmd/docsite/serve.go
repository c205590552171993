package main

import (
	"fmt"
	"net/http"

	dochttp "github.com/fwojciec/docsite/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if c.Prime {
		if err := deps.Index.Prime(deps.Ctx); err != nil {
			return err
		}
		deps.Logger.Info("search index primed")
	}

	server := dochttp.NewServer(deps.Tree, deps.Renderer, deps.Searcher, deps.Logger, c.PublicURL)

	fmt.Fprintf(deps.Stdout, "serving docs on %s\n", c.Addr)
	return http.ListenAndServe(c.Addr, server)
}
