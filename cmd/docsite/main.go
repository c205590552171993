package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/bluemonday"
	"github.com/fwojciec/docsite/fs"
	"github.com/fwojciec/docsite/goldmark"
	"github.com/fwojciec/docsite/goquery"
	dochttp "github.com/fwojciec/docsite/http"
	"github.com/fwojciec/docsite/render"
	"github.com/fwojciec/docsite/search"
	docslog "github.com/fwojciec/docsite/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services exposed for end-to-end testing.
	Tree     *docsite.NavTree
	Renderer docsite.Renderer
	Searcher docsite.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsite --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	source := newSource(cli.Docs)
	pipeline := render.NewPipeline(
		source,
		goldmark.NewConverter(),
		bluemonday.NewSanitizer(),
		goquery.NewProcessor(),
	)
	m.Renderer = docslog.NewLoggingRenderer(pipeline, deps.Logger)
	m.Tree = loadTree(ctx, source, deps.Logger)

	index := search.NewIndex(m.Tree, m.Renderer)
	m.Searcher = docslog.NewLoggingSearcher(index, deps.Logger)

	deps.Tree = m.Tree
	deps.Renderer = m.Renderer
	deps.Searcher = m.Searcher
	deps.Index = index

	return kongCtx.Run(deps)
}

// newSource selects the document source from the docs location: URLs are
// fetched over HTTP, anything else is read from the local filesystem.
func newSource(docs string) docsite.Source {
	if strings.HasPrefix(docs, "http://") || strings.HasPrefix(docs, "https://") {
		return dochttp.NewSource(docs)
	}
	return fs.NewSource(docs)
}

// loadTree reads and decodes the navigation tree. A missing or malformed
// tree degrades to an empty tree rather than failing the program.
func loadTree(ctx context.Context, source docsite.Source, logger *slog.Logger) *docsite.NavTree {
	tree := docsite.NewNavTree()

	raw, err := source.ReadNavigation(ctx)
	if err != nil {
		logger.Warn("navigation unavailable, starting with empty tree",
			"error", docsite.ErrorMessage(err))
		return tree
	}

	nodes, err := docsite.DecodeNav(strings.NewReader(raw))
	if err != nil {
		logger.Warn("navigation malformed, starting with empty tree",
			"error", docsite.ErrorMessage(err))
		return tree
	}

	tree.Load(nodes)
	return tree
}
