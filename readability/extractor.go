// Package readability provides a prodspan.Extractor backed by
// go-shiori/go-readability. It works best on product pages that carry a long
// description block.
package readability

import (
	"strings"

	"github.com/fwojciec/prodspan"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements prodspan.Extractor at compile time.
var _ prodspan.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article of rawHTML. Pages readability cannot
// parse as an article yield empty ContentHTML so the caller falls back to
// FullHTML.
func (e *Extractor) Extract(rawHTML string) (*prodspan.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, prodspan.Errorf(prodspan.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return &prodspan.ExtractResult{FullHTML: rawHTML}, nil
	}

	return &prodspan.ExtractResult{
		Title:       prodspan.CleanTitle(article.Title, article.SiteName),
		ContentHTML: article.Content,
		FullHTML:    rawHTML,
	}, nil
}
