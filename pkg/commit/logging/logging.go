package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const redactedPlaceholder = "[redacted]"

// secretKeys are attribute keys whose values are replaced by the handlers
// built in this package, whatever the caller passed.
var secretKeys = map[string]struct{}{
	"opening":    {},
	"randomness": {},
	"blinding":   {},
	"seed":       {},
}

// Logger is the logging surface of the commitment tooling. Scheme packages
// never log; the registry runner and the CLI do.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts an existing slog.Logger. Passing nil binds to slog.Default().
// The caller's handler is used as is; secret keys are only scrubbed by
// handlers created with NewText or NewJSON.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return leveled{l: logger}
}

// NewText writes logfmt style records at or above level to w.
func NewText(w io.Writer, level slog.Level) Logger {
	return New(slog.New(slog.NewTextHandler(w, handlerOptions(level))))
}

// NewJSON writes one JSON object per record at or above level to w.
func NewJSON(w io.Writer, level slog.Level) Logger {
	return New(slog.New(slog.NewJSONHandler(w, handlerOptions(level))))
}

// Discard drops every record.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})))
}

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level, ReplaceAttr: scrub}
}

func scrub(_ []string, a slog.Attr) slog.Attr {
	if _, ok := secretKeys[strings.ToLower(a.Key)]; ok {
		return Redacted(a.Key)
	}
	return a
}

// ParseLevel maps the --log-level names to slog levels. The empty string
// means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	default:
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
		}
	}
	return level, nil
}

type leveled struct {
	l *slog.Logger
}

func (g leveled) Debug(ctx context.Context, msg string, args ...any) {
	g.l.Log(ctx, slog.LevelDebug, msg, args...)
}

func (g leveled) Info(ctx context.Context, msg string, args ...any) {
	g.l.Log(ctx, slog.LevelInfo, msg, args...)
}

func (g leveled) Warn(ctx context.Context, msg string, args ...any) {
	g.l.Log(ctx, slog.LevelWarn, msg, args...)
}

func (g leveled) Error(ctx context.Context, msg string, args ...any) {
	g.l.Log(ctx, slog.LevelError, msg, args...)
}

func (g leveled) With(args ...any) Logger {
	return leveled{l: g.l.With(args...)}
}

// Redacted stands in for an opening, blinding factor or seed. Pass it where
// the raw value would otherwise go.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the string written in place of a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}
