// Package slog provides logging decorators for eurlex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/eurlex"
)

// Ensure LoggingExecutor implements eurlex.QueryExecutor.
var _ eurlex.QueryExecutor = (*LoggingExecutor)(nil)

// LoggingExecutor wraps a QueryExecutor with logging.
type LoggingExecutor struct {
	next   eurlex.QueryExecutor
	logger *slog.Logger
}

// NewLoggingExecutor creates a new LoggingExecutor.
func NewLoggingExecutor(next eurlex.QueryExecutor, logger *slog.Logger) *LoggingExecutor {
	return &LoggingExecutor{next: next, logger: logger}
}

// Execute delegates to the wrapped executor and logs the query size,
// row count and duration. The query text itself is logged at debug level.
func (e *LoggingExecutor) Execute(ctx context.Context, query string) (rs *eurlex.ResultSet, err error) {
	e.logger.Debug("sparql query", "query", query)
	defer func(begin time.Time) {
		e.logger.Info("sparql query",
			"bytes", len(query),
			"rows", rs.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Execute(ctx, query)
}
