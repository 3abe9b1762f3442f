package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/prodspan"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" {
		var err error
		if text, err = c.fetchText(deps); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
			return err
		}
	}

	entities := deps.Annotator.Annotate(text)
	if c.Offsets && len(entities) > 0 {
		fmt.Fprintln(deps.Stdout, prodspan.FormatEntities(prodspan.AnnotatedRecord{Text: text, Entities: entities}))
		return nil
	}

	names := prodspan.UniqueNames(prodspan.SpanTexts(text, entities))
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d products:\n", len(names))
	fmt.Fprintln(deps.Stdout, prodspan.FormatProducts(names))
	return nil
}

// fetchText fetches the page at c.URL and reduces it to text.
func (c *ExtractCmd) fetchText(deps *Dependencies) (string, error) {
	u, err := url.Parse(c.URL)
	if c.URL == "" || err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", prodspan.Errorf(prodspan.EINVALID, "Please enter a valid URL starting with http:// or https://")
	}

	var fetchErr error
	pages, err := deps.Pages.FetchAll(deps.Ctx, []string{c.URL}, func(p prodspan.FetchProgress) {
		fetchErr = p.Error
	})
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		if fetchErr != nil {
			return "", fetchErr
		}
		return "", prodspan.Errorf(prodspan.EINTERNAL, "no content fetched from %s", c.URL)
	}
	return pages[0].Text, nil
}
