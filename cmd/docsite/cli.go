package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Tree     *docsite.NavTree
	Renderer docsite.Renderer
	Searcher docsite.Searcher
	Index    *search.Index
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Docs    string `short:"d" env:"DOCSITE_DOCS" default:"./docs" help:"Docs base: a local directory or an http(s) URL"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the documentation site over HTTP"`
	Search SearchCmd `cmd:"" help:"Search document titles and bodies"`
	Toc    TocCmd    `cmd:"" help:"Print the table of contents of a document"`
	Nav    NavCmd    `cmd:"" help:"Print the navigation tree"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `env:"DOCSITE_ADDR" default:":8080" help:"Listen address"`
	PublicURL string `default:"http://localhost:8080" help:"Public site base URL used in the sitemap"`
	Prime     bool   `help:"Eagerly index all document bodies at startup"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Query text"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Route string `arg:"" help:"Document route"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct{}
