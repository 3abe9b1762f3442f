// Package htmltomarkdown provides a line-preserving prodspan.Converter.
// HTML is rendered to Markdown so that every block (heading, paragraph,
// list item, table row) lands on its own line, then the Markdown markup is
// stripped. The extractor never grows a span across a line break, so block
// boundaries become hard name boundaries.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/prodspan"
)

// Ensure Converter implements prodspan.Converter at compile time.
var _ prodspan.Converter = (*Converter)(nil)

var (
	imageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe   = regexp.MustCompile(`^#{1,6}\s+`)
	listRe      = regexp.MustCompile(`^(?:[-*+]|\d+\.)\s+`)
	quoteRe     = regexp.MustCompile(`^(?:>\s?)+`)
	tableRuleRe = regexp.MustCompile(`^\|?[\s:|-]+\|?$`)
	emphasisRe  = regexp.MustCompile("\\*\\*|__|\\*|`")
	escapeRe    = regexp.MustCompile(`\\([\\*_{}\[\]()#+\-.!|>~])`)
)

// Converter wraps html-to-markdown to reduce HTML to line-oriented text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Markdown transforms HTML content into Markdown.
func (c *Converter) Markdown(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", prodspan.Errorf(prodspan.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// Convert transforms HTML content into plain text with one block per line.
// Empty lines are dropped and whitespace inside a line is collapsed.
func (c *Converter) Convert(html string) (string, error) {
	md, err := c.Markdown(html)
	if err != nil {
		return "", err
	}

	var lines []string
	inFence := false
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if !inFence {
			trimmed = stripMarkup(trimmed)
		}
		if text := strings.Join(strings.Fields(trimmed), " "); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// stripMarkup removes the Markdown syntax from a single line.
func stripMarkup(line string) string {
	if tableRuleRe.MatchString(line) && strings.Contains(line, "-") {
		return ""
	}
	line = quoteRe.ReplaceAllString(line, "")
	line = headingRe.ReplaceAllString(line, "")
	line = listRe.ReplaceAllString(line, "")
	line = imageRe.ReplaceAllString(line, "")
	line = linkRe.ReplaceAllString(line, "$1")
	line = emphasisRe.ReplaceAllString(line, "")
	line = escapeRe.ReplaceAllString(line, "$1")
	if strings.HasPrefix(line, "|") {
		line = strings.ReplaceAll(line, "|", " ")
	}
	return line
}
