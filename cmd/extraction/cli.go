package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/clemfromspace/extraction"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Registry extraction.TechniqueRegistry
	Fetcher  extraction.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract    ExtractCmd    `cmd:"" help:"Fetch URLs and print the extracted metadata"`
	Techniques TechniquesCmd `cmd:"" help:"List registered technique names"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" name:"url" help:"URLs to extract metadata from"`
	Technique   []string      `short:"t" name:"technique" help:"Technique to run, in order (repeatable; default: all, structured first)"`
	JSON        bool          `help:"Print results as JSON"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"HTTP fetch timeout"`
}

// TechniquesCmd is the "techniques" subcommand.
type TechniquesCmd struct{}
