// Package trace carries a logrus logger through contexts and logs HTTP
// traffic to registries.
package trace

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type contextKey int

const loggerKey contextKey = iota

// NewLogger creates a logger writing to out at level and attaches it to ctx.
func NewLogger(ctx context.Context, out io.Writer, level logrus.Level) (context.Context, logrus.FieldLogger) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&Formatter{})
	logger.SetLevel(level)
	entry := logger.WithContext(ctx)
	return WithLogger(ctx, entry), entry
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger return the logger attached to context or the standard one.
func Logger(ctx context.Context) logrus.FieldLogger {
	logger, ok := ctx.Value(loggerKey).(logrus.FieldLogger)
	if !ok {
		return logrus.StandardLogger()
	}
	return logger
}
