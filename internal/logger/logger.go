// Package logger builds the process logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02 15:04:05"

// New returns a JSON logger on stdout, or a human-readable console logger with
// caller information when pretty is set. An empty or unknown level means info.
func New(pretty bool, level string) zerolog.Logger {
	return newWithWriter(os.Stdout, pretty, level)
}

func newWithWriter(out io.Writer, pretty bool, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		console := zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
		return zerolog.New(console).Level(lvl).With().Timestamp().Caller().Logger()
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("app", "parimutuel-engine").Logger()
}
