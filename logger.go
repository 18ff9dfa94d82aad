package tensoreval

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tensoreval-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithProgram adds the program's result type and instruction count.
func (l *Logger) WithProgram(p *Program) *Logger {
	return &Logger{
		Logger: l.Logger.With("result_type", p.ResultType().String(), "instructions", p.Size()),
	}
}

// WithNodes adds an IR node count field to the logger.
func (l *Logger) WithNodes(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("nodes", n),
	}
}

// LogCompile logs a compile operation.
func (l *Logger) LogCompile(ctx context.Context, resultType string, instructions int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compile failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compile completed",
			"result_type", resultType,
			"instructions", instructions,
		)
	}
}

// LogOptimize logs an optimizer run.
func (l *Logger) LogOptimize(ctx context.Context, strategy string, rewrites, visited int) {
	l.DebugContext(ctx, "optimize completed",
		"strategy", strategy,
		"rewrites", rewrites,
		"visited", visited,
	)
}

// LogBatch logs a batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, duration time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch eval failed",
			"total", count,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "batch eval completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
			"duration", duration,
		)
	default:
		l.InfoContext(ctx, "batch eval completed",
			"count", count,
			"duration", duration,
		)
	}
}
