// Package output provides logging, colors and menu rendering for branchkit.
// Actions return plain results; everything presentational happens here.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Splog provides structured logging and output
type Splog struct {
	out   io.Writer
	err   io.Writer
	debug io.Writer
}

// NewSplog creates a new splog instance writing to stdout/stderr
func NewSplog() *Splog {
	return &Splog{out: os.Stdout, err: os.Stderr}
}

// NewSplogWithWriters creates a splog writing to the given writers (used in tests)
func NewSplogWithWriters(out, err io.Writer) *Splog {
	return &Splog{out: out, err: err}
}

// EnableDebugLog routes Debug output to a size-rotated file. Debug lines are
// dropped until this is called.
func (s *Splog) EnableDebugLog(path string) {
	s.debug = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
}

// Out returns the writer used for standard output
func (s *Splog) Out() io.Writer {
	return s.out
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Summary writes a dev-note summary line in the summary color
func (s *Splog) Summary(format string, args ...interface{}) {
	fmt.Fprintln(s.out, ColorSummary(fmt.Sprintf(format, args...)))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.err, "warning: "+format+"\n", args...)
}

// Error writes a one-line error message in the error color
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintln(s.err, ColorError(fmt.Sprintf(format, args...)))
}

// Debug writes a timestamped line to the debug log, when one is enabled.
// Never shown to the user.
func (s *Splog) Debug(format string, args ...interface{}) {
	if s.debug == nil {
		return
	}
	fmt.Fprintf(s.debug, time.Now().Format(time.RFC3339)+" "+format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.out)
}
