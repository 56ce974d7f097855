// Package logger provides the process-wide structured logger
package logger

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "02.01.2006 15:04:05"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	current.Store(&l)
}

// Init configures the global logger with the given level and format.
// Unknown levels fall back to info, unknown formats to console.
func Init(level string, format ...string) {
	f := ConsoleFormat
	if len(format) > 0 && format[0] != "" {
		f = format[0]
	}

	var out io.Writer
	switch f {
	case JSONFormat:
		out = os.Stdout
	default:
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: TimeFormat}
	}
	SetOutput(out, level)
}

// SetOutput replaces the logger writer, used by tests to capture output
func SetOutput(w io.Writer, level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	current.Store(&l)
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug(msg string, kv ...any) {
	current.Load().Debug().Fields(kv).Msg(msg)
}

func Info(msg string, kv ...any) {
	current.Load().Info().Fields(kv).Msg(msg)
}

func Warn(msg string, kv ...any) {
	current.Load().Warn().Fields(kv).Msg(msg)
}

func Error(msg string, kv ...any) {
	current.Load().Error().Fields(kv).Msg(msg)
}
