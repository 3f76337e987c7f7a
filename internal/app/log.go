package app

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a structured logger writing to w. Debug events are
// emitted only when verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
