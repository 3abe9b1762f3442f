package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/crawl"
	"github.com/fwojciec/prodspan/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := fs.ReadURLs(c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	progress := func(p prodspan.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", p.URL, prodspan.ErrorMessage(p.Error))
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %d ok %s", p.Completed, p.Total, p.Succeeded, crawl.DisplayPath(p.URL, 40))
	}

	pages, err := deps.Pages.FetchAll(deps.Ctx, urls, progress)
	if err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	var size int
	for _, page := range pages {
		if err := deps.Store.Save(deps.Ctx, page); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", page.URL, prodspan.ErrorMessage(err))
			return err
		}
		size += utf8.RuneCountInString(page.Text)
	}

	if len(pages) == 0 {
		_ = deps.Store.Abort()
		fmt.Fprintln(deps.Stdout, "No pages saved")
		return nil
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s of text) to %s\n", len(pages), crawl.FormatChars(size), c.Output)
	return nil
}
