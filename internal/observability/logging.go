// Package observability provides structured logging and formatted output for
// verbose CLI mode.
package observability

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. Verbose mode enables debug records;
// otherwise only warnings and errors surface so TUI output stays clean.
func NewLogger(out io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
