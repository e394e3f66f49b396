// Package slog provides log/slog-based logging decorators for the
// extraction interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/clemfromspace/extraction"
)

// Ensure LoggingTechnique implements extraction.Technique.
var _ extraction.Technique = (*LoggingTechnique)(nil)

// LoggingTechnique wraps a Technique with debug logging of what each
// run contributed.
type LoggingTechnique struct {
	next   extraction.Technique
	logger *slog.Logger
}

// NewLoggingTechnique creates a new LoggingTechnique.
func NewLoggingTechnique(next extraction.Technique, logger *slog.Logger) *LoggingTechnique {
	return &LoggingTechnique{next: next, logger: logger}
}

// Name delegates to the wrapped technique.
func (t *LoggingTechnique) Name() string {
	return t.next.Name()
}

// Extract delegates to the wrapped technique and logs the run.
func (t *LoggingTechnique) Extract(html string) (fields *extraction.Fields, err error) {
	defer func(begin time.Time) {
		t.logger.Debug("technique run",
			"technique", t.next.Name(),
			"values", fields.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Extract(html)
}
