package main

import (
	"fmt"

	hadithgin "github.com/x7007x/hadithsearch/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logWriter := deps.Stderr
	if c.Quiet {
		logWriter = nil
	}

	searcher, cleanup := newSearcher(c.BaseURL, c.Delay, c.Timeout, logWriter)
	defer cleanup()

	server := hadithgin.NewServer(searcher)

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)
	return server.Run(c.Addr)
}
