package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/clemfromspace/extraction"
	"github.com/clemfromspace/extraction/goquery"
	exthttp "github.com/clemfromspace/extraction/http"
	"github.com/clemfromspace/extraction/htmldate"
	extslog "github.com/clemfromspace/extraction/slog"
	"github.com/clemfromspace/extraction/trafilatura"
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
type Main struct {
	// Technique registry. Defaults to the built-in techniques.
	// Set before calling Run() to inject an alternative.
	Registry extraction.TechniqueRegistry

	// HTML fetcher. Defaults to the rate-limited HTTP fetcher.
	// Set before calling Run() for end-to-end testing.
	Fetcher extraction.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("extraction"),
		kong.Description("Extract basic metadata from HTML webpages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'extraction --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Registry == nil {
		registry := goquery.NewRegistry()
		registerTechniques(registry)
		m.Registry = registry
	}

	if m.Fetcher == nil {
		m.Fetcher = extslog.NewLoggingFetcher(
			exthttp.NewFetcher(exthttp.WithTimeout(cli.Extract.Timeout)),
			logger,
		)
	}
	defer m.Fetcher.Close()

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Registry: m.Registry,
		Fetcher:  m.Fetcher,
	}

	return kongCtx.Run(deps)
}

// defaultTechniques is the extraction order when --technique is not
// given: high quality structured techniques first, the generic sweep
// last, so the best values land at the front of every field list.
var defaultTechniques = []string{
	"trafilatura",
	"open_graph",
	"twitter_card",
	"html5_semantic",
	"head_tags",
	"html_date",
	"semantic",
}

// registerTechniques registers every built-in technique with the registry.
func registerTechniques(registry extraction.TechniqueRegistry) {
	registry.Register("head_tags", func() extraction.Technique { return goquery.NewHeadTags() })
	registry.Register("open_graph", func() extraction.Technique { return goquery.NewOpenGraph() })
	registry.Register("twitter_card", func() extraction.Technique { return goquery.NewTwitterCard() })
	registry.Register("html5_semantic", func() extraction.Technique { return goquery.NewHTML5Semantic() })
	registry.Register("semantic", func() extraction.Technique { return goquery.NewSemantic() })
	registry.Register("trafilatura", func() extraction.Technique { return trafilatura.NewMetadata() })
	registry.Register("html_date", func() extraction.Technique { return htmldate.NewPublishDate() })
}
