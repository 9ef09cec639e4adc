package logger

import (
	"io"
	"log/slog"
)

// Interface is the structured logger passed to use cases, repositories and
// outbound clients. Arguments are alternating key/value pairs.
type Interface interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	With(keysAndValues ...any) Interface
	Named(name string) Interface
}

type slogLogger struct {
	l *slog.Logger
}

// NewLogger wraps the process logger configured by Init.
func NewLogger() Interface {
	return &slogLogger{l: Get()}
}

func NewComponentLogger(component string) Interface {
	return &slogLogger{l: Get().With("component", component)}
}

func NewNop() Interface {
	return &slogLogger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (s *slogLogger) Debugw(msg string, keysAndValues ...any) {
	logAt(s.l, slog.LevelDebug, msg, keysAndValues)
}

func (s *slogLogger) Infow(msg string, keysAndValues ...any) {
	logAt(s.l, slog.LevelInfo, msg, keysAndValues)
}

func (s *slogLogger) Warnw(msg string, keysAndValues ...any) {
	logAt(s.l, slog.LevelWarn, msg, keysAndValues)
}

func (s *slogLogger) Errorw(msg string, keysAndValues ...any) {
	logAt(s.l, slog.LevelError, msg, keysAndValues)
}

func (s *slogLogger) With(keysAndValues ...any) Interface {
	return &slogLogger{l: s.l.With(keysAndValues...)}
}

func (s *slogLogger) Named(name string) Interface {
	return &slogLogger{l: s.l.With("logger", name)}
}
