package collector

import (
	"context"
	"time"
)

// Logger receives collector timing lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type loggerKey struct{}

// WithLogger attaches l to ctx for Collect and CollectSystemSummary.
func WithLogger(ctx context.Context, l Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nil
	}
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return nil
}

func logTiming(ctx context.Context, name string, start time.Time) {
	if log := loggerFromContext(ctx); log != nil {
		log.Printf("collector %s: ok (%dms)", name, time.Since(start).Milliseconds())
	}
}
