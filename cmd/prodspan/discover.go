package main

import (
	"fmt"

	"github.com/fwojciec/prodspan"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	filter, err := prodspan.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	urls, err := deps.Discoverer.Discover(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No URLs found")
		return nil
	}
	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
