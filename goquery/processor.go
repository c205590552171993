// Package goquery post-processes rendered HTML using the goquery library:
// it assigns unique ids to headings, extracts the document outline, and
// derives the plain text used by search.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
	"golang.org/x/net/html"
)

// headingSelector matches the heading levels that participate in the
// table of contents.
const headingSelector = "h1, h2, h3, h4"

// Ensure Processor implements docsite.Processor at compile time.
var _ docsite.Processor = (*Processor)(nil)

// Processor implements docsite.Processor on top of goquery.
type Processor struct{}

// NewProcessor creates a new Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process assigns an id to every level 1-4 heading that lacks one, using
// the canonical slug-and-disambiguate rule, and returns the updated HTML
// together with the outline and the tag-stripped plain text.
func (p *Processor) Process(rawHTML string) (*docsite.Processed, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "failed to parse HTML: %v", err)
	}

	headings := doc.Find(headingSelector)

	// Reserve explicit ids first so generated ids never collide with them.
	slugger := docsite.NewSlugger()
	headings.Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok && id != "" {
			slugger.Reserve(id)
		}
	})

	var outline []docsite.Heading
	headings.Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		id, ok := sel.Attr("id")
		if !ok || id == "" {
			id = slugger.Slug(text)
			sel.SetAttr("id", id)
		}
		outline = append(outline, docsite.Heading{
			ID:    id,
			Text:  text,
			Level: headingLevel(sel),
		})
	})

	body := doc.Find("body")
	out, err := body.Html()
	if err != nil {
		return nil, docsite.Errorf(docsite.EINTERNAL, "failed to serialize HTML: %v", err)
	}

	return &docsite.Processed{
		HTML:      out,
		PlainText: plainText(body),
		Headings:  outline,
	}, nil
}

func headingLevel(sel *goquery.Selection) int {
	if len(sel.Nodes) == 0 {
		return 0
	}
	name := sel.Nodes[0].Data // "h1".."h4"
	if len(name) != 2 {
		return 0
	}
	return int(name[1] - '0')
}

// plainText strips all tags, separating block elements with spaces and
// collapsing whitespace runs, so substring search never matches across
// what renders as a visual boundary without whitespace.
func plainText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		writeText(&sb, node)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

var blockTags = map[string]bool{
	"blockquote": true,
	"br":         true,
	"div":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"hr":         true,
	"li":         true,
	"p":          true,
	"pre":        true,
	"table":      true,
	"td":         true,
	"th":         true,
	"tr":         true,
	"ul":         true,
	"ol":         true,
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if blockTags[n.Data] {
			sb.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte(' ')
	}
}
