package main

import (
	"encoding/json"
	"fmt"

	"github.com/x7007x/hadithsearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	searcher, cleanup := newSearcher(c.BaseURL, c.Delay, c.Timeout, nil)
	defer cleanup()

	var maxPages *int
	if c.MaxPages > 0 {
		maxPages = &c.MaxPages
	}

	result, err := searcher.Search(deps.Ctx, c.Query, maxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hadithsearch.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
