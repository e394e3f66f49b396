package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/clemfromspace/extraction"
	extslog "github.com/clemfromspace/extraction/slog"
	"golang.org/x/sync/errgroup"
)

// document pairs a URL with its extraction outcome.
type document struct {
	URL       string                `json:"url"`
	Extracted *extraction.Extracted `json:"extracted,omitempty"`
	Err       error                 `json:"-"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	names := c.Technique
	if len(names) == 0 {
		names = defaultTechniques
	}

	extractor, err := c.buildExtractor(deps, names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", extraction.ErrorMessage(err))
		return err
	}

	// Fetch concurrently; each document's extraction stays sequential.
	documents := make([]document, len(c.URLs))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range c.URLs {
		g.Go(func() error {
			documents[i] = document{URL: url}
			html, err := deps.Fetcher.Fetch(ctx, url)
			if err != nil {
				documents[i].Err = err
				return nil
			}
			extracted, err := extractor.Extract(html)
			if err != nil {
				documents[i].Err = err
				return nil
			}
			documents[i].Extracted = extracted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, documents)
	}
	return printText(deps.Stdout, deps.Stderr, documents)
}

// buildExtractor resolves the ordered technique names and wraps each
// technique with debug logging.
func (c *ExtractCmd) buildExtractor(deps *Dependencies, names []string) (*extraction.Extractor, error) {
	techniques := make([]extraction.Technique, 0, len(names))
	for _, name := range names {
		technique, err := deps.Registry.Get(name)
		if err != nil {
			return nil, err
		}
		techniques = append(techniques, extslog.NewLoggingTechnique(technique, deps.Logger))
	}
	return extraction.NewExtractor(techniques...), nil
}

func printJSON(stdout io.Writer, documents []document) error {
	var firstErr error
	for i := range documents {
		if documents[i].Err != nil && firstErr == nil {
			firstErr = documents[i].Err
		}
	}
	out, err := json.MarshalIndent(documents, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(out))
	return firstErr
}

func printText(stdout, stderr io.Writer, documents []document) error {
	var firstErr error
	for _, doc := range documents {
		if len(documents) > 1 {
			fmt.Fprintf(stdout, "== %s\n", doc.URL)
		}
		if doc.Err != nil {
			fmt.Fprintf(stderr, "error: %s: %s\n", doc.URL, doc.Err)
			if firstErr == nil {
				firstErr = doc.Err
			}
			continue
		}
		for _, field := range extraction.AllFields {
			values := doc.Extracted.Values(field)
			if len(values) == 0 {
				continue
			}
			fmt.Fprintf(stdout, "%s:\n", field)
			for _, value := range values {
				fmt.Fprintf(stdout, "  %s\n", value)
			}
		}
	}
	return firstErr
}
