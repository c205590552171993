package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docsite/cmd/docsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func docsFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "nav.json", `[
		{"label":"Guides","children":[
			{"label":"Setup Guide","route":"guides/setup"}
		]}
	]`)
	writeFixture(t, dir, "guides/setup.md", "# Setup\n\nInstall the dependencies, then run setup.\n")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := main.NewMain().Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	_, err := run(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Search(t *testing.T) {
	t.Parallel()

	t.Run("finds documents by title and body", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "--docs", docsFixture(t), "search", "setup")

		require.NoError(t, err)
		assert.Contains(t, out, "guides/setup")
		assert.Contains(t, out, "[both]")
		assert.Contains(t, out, "Guides > Setup Guide")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "--docs", docsFixture(t), "search", "zzz-absent")

		require.NoError(t, err)
		assert.Contains(t, out, "No matches.")
	})
}

func TestRun_Toc(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--docs", docsFixture(t), "toc", "guides/setup")

	require.NoError(t, err)
	assert.Contains(t, out, "Setup  #setup")
}

func TestRun_Nav(t *testing.T) {
	t.Parallel()

	t.Run("prints the tree", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "--docs", docsFixture(t), "nav")

		require.NoError(t, err)
		assert.Contains(t, out, "Guides/")
		assert.Contains(t, out, "Setup Guide  (guides/setup)")
	})

	t.Run("degrades to an empty tree without navigation", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "--docs", t.TempDir(), "nav")

		require.NoError(t, err)
		assert.Contains(t, out, "Navigation tree is empty.")
	})
}
