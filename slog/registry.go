// Package slog provides logging decorators for maltlock services.
package slog

import (
	"log/slog"
	"time"

	"github.com/rlatmfrl24/maltlock"
)

// Ensure LoggingRegistry implements maltlock.ParserRegistry.
var _ maltlock.ParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ParserRegistry with per-dispatch logging.
type LoggingRegistry struct {
	next   maltlock.ParserRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next maltlock.ParserRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Parse dispatches to the wrapped registry and logs the outcome.
func (r *LoggingRegistry) Parse(parserID, html, pageURL string) ([]maltlock.ParsedItem, error) {
	begin := time.Now()
	items, err := r.next.Parse(parserID, html, pageURL)
	if err != nil {
		r.logger.Error("parse failed",
			"parser", parserID,
			"error", maltlock.ErrorMessage(err),
		)
		return nil, err
	}
	r.logger.Info("parse",
		"parser", parserID,
		"items", len(items),
		"duration", time.Since(begin),
	)
	return items, nil
}

// IDs delegates to the wrapped registry.
func (r *LoggingRegistry) IDs() []string {
	return r.next.IDs()
}
