// Package goquery implements content selection, text reduction and link
// extraction over parsed HTML using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodspan"
)

// noiseSelector matches elements that never carry product names worth
// annotating: scripts, styling, site chrome and forms.
const noiseSelector = "script, style, noscript, template, nav, header, footer, aside, form, link, meta, iframe, svg"

// containerSelectors are tried in order when a page has neither <main> nor
// <article>. They cover common shop themes.
var containerSelectors = []string{
	"#content",
	"#main-content",
	".content",
	".main",
	".product-details",
}

// Ensure Extractor implements prodspan.Extractor at compile time.
var _ prodspan.Extractor = (*Extractor)(nil)

// Extractor selects the main content of a shop page by tag and container
// heuristics after stripping noise elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract strips noise and returns the first of <main>, <article>, a known
// content container or <body> as ContentHTML. FullHTML holds the whole
// stripped document.
func (e *Extractor) Extract(rawHTML string) (*prodspan.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, prodspan.Errorf(prodspan.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, prodspan.Errorf(prodspan.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(noiseSelector).Remove()

	fullHTML, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if main := selectMain(doc); main != nil {
		contentHTML, err = goquery.OuterHtml(main)
		if err != nil {
			return nil, err
		}
	}

	return &prodspan.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		FullHTML:    fullHTML,
	}, nil
}

// selectMain returns the main content element, or nil if the document has
// no body.
func selectMain(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"main", "article"} {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	for _, sel := range containerSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	if s := doc.Find("body").First(); s.Length() > 0 {
		return s
	}
	return nil
}
