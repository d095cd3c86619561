package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds a timestamped logger writing to w at the given level.
// Timestamps render as "HH:MM:SS.cc" so repeated runs line up visually.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a private key type so context values cannot collide with other
// packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context for retrieval in command bodies.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default() when the
// context carries none, so callers never receive nil.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
