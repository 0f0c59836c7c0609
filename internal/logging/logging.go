package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns the process logger. Without debug only warnings and errors reach stderr.
func New(debug bool) hclog.Logger {
	return NewWithOutput(debug, os.Stderr)
}

func NewWithOutput(debug bool, output io.Writer) hclog.Logger {
	level := hclog.Warn
	if debug {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "lpk",
		Level:  level,
		Output: output,
	})
}

// Discard is used by tests and library callers that pass no logger.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
