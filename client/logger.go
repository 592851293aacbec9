package client

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below slog.LevelDebug, for per-frame wire tracing — the
// same level the teacher carves out in server/oscar/middleware/logger.go.
const LevelTrace = slog.Level(-8)

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
}

// NewLogger builds a text-handler slog.Logger at the level named by
// logLevel ("trace", "debug", "info", "warn", "error"), unrecognized or
// empty values falling back to info.
func NewLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "trace":
		level = LevelTrace
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				lvl := a.Value.Any().(slog.Level)
				label, ok := levelNames[lvl]
				if !ok {
					label = lvl.String()
				}
				a.Value = slog.StringValue(label)
			}
			return a
		},
	}
	return slog.New(contextHandler{slog.NewTextHandler(os.Stdout, opts)})
}

// contextCorrelationKey and contextNickKey tag a context so log records
// emitted through it carry a connection id and/or nick automatically.
type contextKey string

const (
	contextCorrelationKey contextKey = "connection_id"
	contextNickKey        contextKey = "nick"
)

// WithCorrelationID attaches id to ctx for contextHandler to surface on
// every subsequent log record.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextCorrelationKey, id)
}

// WithNick attaches nick to ctx for contextHandler to surface on every
// subsequent log record.
func WithNick(ctx context.Context, nick string) context.Context {
	return context.WithValue(ctx, contextNickKey, nick)
}

type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctx.Value(contextCorrelationKey).(string); ok {
		r.AddAttrs(slog.String("connection_id", id))
	}
	if nick, ok := ctx.Value(contextNickKey).(string); ok {
		r.AddAttrs(slog.String("nick", nick))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}
