// Package logger configures the process-wide slog logger and exposes the
// key/value Interface used across the application.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"dialpool/internal/shared/config"
)

var (
	mu      sync.RWMutex
	current *slog.Logger
	logFile *os.File
)

// Init builds the process logger from cfg. "json" selects slog's JSON
// handler, anything else the tint console handler. Warnings and errors carry
// their source location, and in debug mode every level does.
func Init(cfg *config.LoggerConfig, mode string) error {
	w, f, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	level := parseLevel(cfg.Level)
	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = newConsoleHandler(w, level)
	}

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if mode == "debug" {
		sourceLevels = append(sourceLevels, slog.LevelDebug, slog.LevelInfo)
	}

	l := slog.New(NewConditionalSourceHandler(base, sourceLevels...))

	mu.Lock()
	prevFile := logFile
	current, logFile = l, f
	mu.Unlock()
	slog.SetDefault(l)

	if prevFile != nil {
		_ = prevFile.Close()
	}
	return nil
}

// Get returns the process logger. Before Init it is a console logger on
// stdout at info level.
func Get() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = slog.New(NewConditionalSourceHandler(
			newConsoleHandler(os.Stdout, slog.LevelInfo), slog.LevelWarn, slog.LevelError))
	}
	return current
}

// Sync flushes the log file when output goes to one.
func Sync() error {
	mu.RLock()
	f := logFile
	mu.RUnlock()
	if f == nil {
		return nil
	}
	return f.Sync()
}

func Debug(msg string, args ...any) { logAt(Get(), slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { logAt(Get(), slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { logAt(Get(), slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { logAt(Get(), slog.LevelError, msg, args) }

// logAt records the caller of the exported wrapper as the source.
func logAt(l *slog.Logger, level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(path string) (io.Writer, *os.File, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func newConsoleHandler(w io.Writer, level slog.Leveler) slog.Handler {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}
