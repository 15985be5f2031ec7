package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// ParseLogLevel parses a level name. Unknown names map to info.
func ParseLogLevel(s string) slog.Level {
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

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level name (debug, info, warn, error).
	Level string
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// NoColor disables ANSI colors, for log files.
	NoColor bool
}

// Logger is the application logger: a slog.Logger on a tint handler with
// an adjustable level.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	level := new(slog.LevelVar)
	level.Set(ParseLogLevel(cfg.Level))

	handler := tint.NewHandler(cfg.Output, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05.000",
		NoColor:    cfg.NoColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
	return &Logger{Logger: slog.New(handler), level: level}
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	level := new(slog.LevelVar)
	return &Logger{Logger: slog.New(slog.DiscardHandler), level: level}
}

// With returns a logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), level: l.level}
}

// WithComponent returns a logger with the component attribute set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// SetLevel changes the minimum level for this logger and every logger
// derived from it.
func (l *Logger) SetLevel(name string) {
	l.level.Set(ParseLogLevel(name))
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}
