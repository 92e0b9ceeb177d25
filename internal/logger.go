package internal

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/phsym/console-slog"
)

// ParseLogLevel converts a string log level name to a slog.Level.
// Recognized values: "debug", "info", "warning"/"warn", "error".
// Defaults to slog.LevelInfo for unrecognized values.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("unknown log level, defaulting to info", "level", level)
		return slog.LevelInfo
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLogHandler returns a colored console handler when color is set and a
// plain text handler otherwise.
func NewLogHandler(w io.Writer, level slog.Level, color bool) slog.Handler {
	if color {
		return console.NewHandler(w, &console.HandlerOptions{Level: level})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetupLogger installs the default logger on stderr at the given level.
func SetupLogger(level string) {
	slog.SetDefault(slog.New(NewLogHandler(os.Stderr, ParseLogLevel(level), IsTerminal(os.Stderr))))
}
