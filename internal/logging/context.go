package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context. If no logger is found,
// returns a disabled logger (no-op).
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, logger)
}

// WithWindowID creates a child logger with a window_id field.
func WithWindowID(ctx context.Context, windowID uint32) context.Context {
	logger := FromContext(ctx).With().Uint32("window_id", windowID).Logger()
	return WithContext(ctx, logger)
}
