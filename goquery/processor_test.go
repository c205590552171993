package goquery_test

import (
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	t.Parallel()

	t.Run("assigns slug ids to headings", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process("<h1>Getting Started</h1><p>text</p>")

		require.NoError(t, err)
		assert.Contains(t, got.HTML, `<h1 id="getting-started">Getting Started</h1>`)
		require.Len(t, got.Headings, 1)
		assert.Equal(t, docsite.Heading{ID: "getting-started", Text: "Getting Started", Level: 1}, got.Headings[0])
	})

	t.Run("duplicate headings get numeric suffixes in document order", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process("<h1>A</h1><h2>A</h2>")

		require.NoError(t, err)
		require.Len(t, got.Headings, 2)
		assert.Equal(t, "a", got.Headings[0].ID)
		assert.Equal(t, 1, got.Headings[0].Level)
		assert.Equal(t, "a-2", got.Headings[1].ID)
		assert.Equal(t, 2, got.Headings[1].Level)
	})

	t.Run("existing ids are kept and never collided with", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process(`<h1 id="intro">Intro</h1><h2>Intro</h2>`)

		require.NoError(t, err)
		require.Len(t, got.Headings, 2)
		assert.Equal(t, "intro", got.Headings[0].ID)
		assert.Equal(t, "intro-2", got.Headings[1].ID)
	})

	t.Run("repeated parses produce identical ids", func(t *testing.T) {
		t.Parallel()

		in := "<h1>Overview</h1><h2>Overview</h2><h3>Details</h3>"

		p := goquery.NewProcessor()
		first, err := p.Process(in)
		require.NoError(t, err)
		second, err := p.Process(in)
		require.NoError(t, err)

		assert.Equal(t, first.Headings, second.Headings)
	})

	t.Run("headings deeper than level 4 are ignored", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process("<h4>Deep</h4><h5>Deeper</h5><h6>Deepest</h6>")

		require.NoError(t, err)
		require.Len(t, got.Headings, 1)
		assert.Equal(t, 4, got.Headings[0].Level)
	})

	t.Run("plain text separates blocks and collapses whitespace", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process("<h1>Title</h1><p>first\n  paragraph</p><ul><li>one</li><li>two</li></ul>")

		require.NoError(t, err)
		assert.Equal(t, "Title first paragraph one two", got.PlainText)
	})

	t.Run("plain text excludes markup", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProcessor()
		got, err := p.Process(`<p>see <a href="/x">the guide</a> now</p>`)

		require.NoError(t, err)
		assert.Equal(t, "see the guide now", got.PlainText)
		assert.NotContains(t, got.PlainText, "href")
	})
}
