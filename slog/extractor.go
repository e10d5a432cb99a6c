// Package slog provides logging decorators for pagemeta interfaces using
// the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/pagemeta/pagemeta"
)

// Ensure LoggingExtractor implements pagemeta.Extractor.
var _ pagemeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of call outcomes. The
// core pipeline itself does no logging; callers that want observability
// wrap it with this decorator.
type LoggingExtractor struct {
	next   pagemeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(markup string, sourceURL string) (*pagemeta.Result, error) {
	begin := time.Now()
	result, err := e.next.Extract(markup, sourceURL)
	if err != nil {
		e.logger.Error("extraction failed",
			"source_url", sourceURL,
			"markup_bytes", len(markup),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction complete",
		"source_url", sourceURL,
		"markup_bytes", len(markup),
		"categories", len(result.Categories()),
		"duration", time.Since(begin),
	)
	return result, nil
}
