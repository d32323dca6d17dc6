// Package logging provides the structured logger used across vitewind. It is
// a thin layer over log/slog that carries a component name and persistent
// fields, and always writes to stderr so that it never interleaves with the
// output of the commands being run.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q (debug, info, warn, error)", name)
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// StructuredLogger implements Logger on top of slog.
type StructuredLogger struct {
	handler   slog.Handler
	level     LogLevel
	component string
	fields    map[string]interface{}
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level     LogLevel
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *StructuredLogger {
	if config == nil {
		config = DefaultConfig()
	}
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &StructuredLogger{
		handler:   handler,
		level:     config.Level,
		component: config.Component,
		fields:    make(map[string]interface{}),
	}
}

// Discard returns a logger that drops everything. Used where no logger was
// injected.
func Discard() Logger {
	return NewLogger(&LoggerConfig{Level: LevelError + 1, Output: io.Discard})
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	l.log(ctx, slog.LevelDebug, nil, msg, fields...)
}

// Info logs an info message
func (l *StructuredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	l.log(ctx, slog.LevelInfo, nil, msg, fields...)
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	if l.level > LevelWarn {
		return
	}
	l.log(ctx, slog.LevelWarn, err, msg, fields...)
}

// Error logs an error message
func (l *StructuredLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	if l.level > LevelError {
		return
	}
	l.log(ctx, slog.LevelError, err, msg, fields...)
}

// With creates a new logger with additional fields
func (l *StructuredLogger) With(fields ...interface{}) Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		newFields[k] = v
	}

	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			newFields[key] = fields[i+1]
		}
	}

	return &StructuredLogger{
		handler:   l.handler,
		level:     l.level,
		component: l.component,
		fields:    newFields,
	}
}

// WithComponent creates a new logger with component context
func (l *StructuredLogger) WithComponent(component string) Logger {
	return &StructuredLogger{
		handler:   l.handler,
		level:     l.level,
		component: component,
		fields:    l.fields,
	}
}

func (l *StructuredLogger) log(ctx context.Context, level slog.Level, err error, msg string, fields ...interface{}) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(l.fields)+len(fields)/2+2)

	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	for k, v := range l.fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			attrs = append(attrs, slog.Any(key, fields[i+1]))
		}
	}

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	_ = l.handler.Handle(ctx, record)
}

// PerfLogger tracks how long one operation took.
type PerfLogger struct {
	Logger
	startTime time.Time
}

// StartOperation begins timing an operation. The returned logger carries the
// operation name as a field.
func StartOperation(logger Logger, operation string) *PerfLogger {
	return &PerfLogger{
		Logger:    logger.With("operation", operation),
		startTime: time.Now(),
	}
}

// End logs the operation as completed with its duration.
func (p *PerfLogger) End(ctx context.Context) {
	p.Debug(ctx, "Operation completed", "duration", time.Since(p.startTime).String())
}

// EndWithError logs the operation as failed with its duration.
func (p *PerfLogger) EndWithError(ctx context.Context, err error) {
	p.Error(ctx, err, "Operation failed", "duration", time.Since(p.startTime).String())
}
