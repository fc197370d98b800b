package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds shared context and output streams for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the search HTTP API server"`
	Search SearchCmd `cmd:"" help:"Run a search and print the JSON result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string        `default:":5000" env:"HADITHSEARCH_ADDR" help:"Address to listen on"`
	BaseURL string        `default:"https://sunnah.com" env:"HADITHSEARCH_BASE_URL" help:"Upstream site base URL"`
	Delay   time.Duration `default:"1.2s" env:"HADITHSEARCH_DELAY" help:"Pause between successive page fetches"`
	Timeout time.Duration `default:"30s" env:"HADITHSEARCH_TIMEOUT" help:"Upstream fetch timeout"`
	Quiet   bool          `short:"q" help:"Disable fetch and search logging"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string        `arg:"" help:"Search query"`
	MaxPages int           `short:"m" help:"Maximum number of result pages to fetch (0 = uncapped)"`
	BaseURL  string        `default:"https://sunnah.com" env:"HADITHSEARCH_BASE_URL" help:"Upstream site base URL"`
	Delay    time.Duration `default:"1.2s" env:"HADITHSEARCH_DELAY" help:"Pause between successive page fetches"`
	Timeout  time.Duration `default:"30s" env:"HADITHSEARCH_TIMEOUT" help:"Upstream fetch timeout"`
}
