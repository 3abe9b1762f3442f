// Package trafilatura provides a prodspan.Extractor backed by
// go-trafilatura's boilerplate removal. It suits shops whose product copy
// lives in long-form descriptions rather than in a recognizable container.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/prodspan"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements prodspan.Extractor at compile time.
var _ prodspan.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML without reader comments and
// reviews. FullHTML is the unmodified input; converters drop scripts and
// styles themselves.
func (e *Extractor) Extract(rawHTML string) (*prodspan.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, prodspan.Errorf(prodspan.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &prodspan.ExtractResult{
		Title:       prodspan.CleanTitle(result.Metadata.Title, result.Metadata.Sitename),
		ContentHTML: contentHTML,
		FullHTML:    rawHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
