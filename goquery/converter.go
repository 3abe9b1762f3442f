package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodspan"
	"golang.org/x/net/html"
)

// Ensure TextConverter implements prodspan.Converter at compile time.
var _ prodspan.Converter = (*TextConverter)(nil)

// TextConverter flattens HTML into a single line of text: the text of every
// node joined by a space, with whitespace runs collapsed.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the visible text of html on one line.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", prodspan.Errorf(prodspan.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", prodspan.Errorf(prodspan.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

// collectText appends the text nodes under n in document order.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
