// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global level from a name such as "debug" or "warn" and routes
// log output to stderr. Unknown names fall back to info.
func Init(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	SetOutput(os.Stderr)
}

// SetOutput replaces the log writer, keeping the console format
func SetOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// GetLogger returns a child logger tagged with component
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
