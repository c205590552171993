package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsite"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	roots := deps.Tree.Roots()
	if len(roots) == 0 {
		fmt.Fprintln(deps.Stdout, "Navigation tree is empty.")
		return nil
	}

	printNodes(deps, roots, 0)
	return nil
}

func printNodes(deps *Dependencies, nodes []*docsite.NavNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.IsFolder() {
			fmt.Fprintf(deps.Stdout, "%s%s/\n", indent, n.Label)
			printNodes(deps, n.Children, depth+1)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s%s  (%s)\n", indent, n.Label, n.Route)
	}
}
