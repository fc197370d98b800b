// Command hadithsearch searches sunnah.com hadith citations, either as a
// one-shot CLI query or as a long-running HTTP API server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/x7007x/hadithsearch"
	"github.com/x7007x/hadithsearch/crawl"
	"github.com/x7007x/hadithsearch/goquery"
	hadithhttp "github.com/x7007x/hadithsearch/http"
	hadithslog "github.com/x7007x/hadithsearch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hadithsearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hadithsearch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// newSearcher wires the fetch, parse, and crawl layers for commands.
// The returned cleanup function closes the underlying fetcher.
func newSearcher(baseURL string, delay, timeout time.Duration, logWriter io.Writer) (hadithsearch.Searcher, func()) {
	fetcher := hadithhttp.NewFetcher(hadithhttp.WithTimeout(timeout))

	var f hadithsearch.Fetcher = fetcher
	var logger *slog.Logger
	if logWriter != nil {
		logger = slog.New(slog.NewTextHandler(logWriter, nil))
		f = hadithslog.NewLoggingFetcher(f, logger)
	}

	var searcher hadithsearch.Searcher = &crawl.Searcher{
		Fetcher: f,
		Parser:  goquery.NewParser(),
		BaseURL: baseURL,
		Limiter: crawl.NewPageLimiter(delay),
	}
	if logger != nil {
		searcher = hadithslog.NewLoggingSearcher(searcher, logger)
	}

	return searcher, func() { _ = fetcher.Close() }
}
