// Package log builds the slog loggers used across courseview. Records are
// formatted by charmbracelet/log; where they go and which level passes is
// decided once per process by Setup.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

type options struct {
	writer io.Writer
	level  log.Level
}

var defaults = options{writer: os.Stderr, level: log.InfoLevel}

// Setup routes loggers created afterwards to file, or to fallback when file is
// empty, and drops records below level. The returned func closes the file.
func Setup(level, file string, fallback io.Writer) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if file == "" {
		if fallback == nil {
			fallback = os.Stderr
		}
		defaults = options{writer: fallback, level: lvl}
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defaults = options{writer: f, level: lvl}
	return func() { _ = f.Close() }, nil
}

func handler(opts options, prefix string) *log.Logger {
	return log.NewWithOptions(opts.writer, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           opts.level,
	})
}

// New returns a logger whose records carry the given prefix.
func New(prefix string) *slog.Logger {
	return slog.New(handler(defaults, prefix))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(handler(options{writer: io.Discard, level: log.FatalLevel}, ""))
}

type ctxKey struct{}

// IntoContext adds a logger to a context. Use FromContext to
// pull the logger out.
func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// SubLogger names a component under base, e.g. "courseview/ingest". The child
// keeps the writer and level of base.
func SubLogger(base *slog.Logger, component string) *slog.Logger {
	cl, ok := base.Handler().(*log.Logger)
	if !ok {
		return base.With("component", component)
	}
	prefix := component
	if p := cl.GetPrefix(); p != "" {
		prefix = p + "/" + component
	}
	return slog.New(cl.WithPrefix(prefix))
}
