package app

import (
	"io"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Verbose   bool          // debug-level logging
	Timeout   time.Duration // deadline for a single search; 0 means none
	LogOutput io.Writer     // optional; defaults to os.Stderr
}
