package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostic logger. Non-fatal I/O failures are
// reported through it; --verbose adds debug traces.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "adr",
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
