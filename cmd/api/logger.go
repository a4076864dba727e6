// cmd/api/logger.go
package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a zerolog logger writing to out. Development gets the
// human-readable console writer; every other environment logs JSON lines.
func newLogger(out io.Writer, environment string) zerolog.Logger {
	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("version", appVersion).
		Logger()
}
