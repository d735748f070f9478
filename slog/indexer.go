// Package slog provides logging decorators for siteindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteindex"
)

// Ensure LoggingIndexBuilder implements siteindex.IndexBuilder.
var _ siteindex.IndexBuilder = (*LoggingIndexBuilder)(nil)

// LoggingIndexBuilder wraps an IndexBuilder with summary logging.
type LoggingIndexBuilder struct {
	next   siteindex.IndexBuilder
	logger *slog.Logger
}

// NewLoggingIndexBuilder creates a new LoggingIndexBuilder.
func NewLoggingIndexBuilder(next siteindex.IndexBuilder, logger *slog.Logger) *LoggingIndexBuilder {
	return &LoggingIndexBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the run outcome.
func (b *LoggingIndexBuilder) Build(ctx context.Context, root string) (summary *siteindex.RunSummary, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"root", root,
			"duration", time.Since(begin),
			"err", err,
		}
		if summary != nil {
			attrs = append(attrs,
				"indexed", summary.Indexed,
				"skipped", summary.Skipped,
				"errors", summary.Errors,
				"breadcrumbs", summary.Breadcrumbs,
				"size", siteindex.FormatBytes(summary.OutputBytes),
			)
		}
		b.logger.Info("index build", attrs...)
	}(time.Now())
	return b.next.Build(ctx, root)
}
