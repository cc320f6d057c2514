// Package output provides formatted output utilities for the CLI and the
// console reporters.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer handles CLI output formatting.
//
// The primitive methods (Print, Println, Error, Errorln) return the error
// from the underlying io.Writer so that callers producing reports can treat
// a broken output channel as fatal. Decorated helpers ignore write errors.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers.
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w.out, format, args...)
	return err
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w.out, format+"\n", args...)
	return err
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w.err, format, args...)
	return err
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w.err, format+"\n", args...)
	return err
}

// Success prints a success message (skipped in quiet mode).
func (w *Writer) Success(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		_ = w.Println("%s%s%s", green, msg, reset)
	} else {
		_ = w.Println("%s", msg)
	}
}

// ErrorPrefix prints an error message with taskreport prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		_ = w.Errorln("%staskreport:%s %s", red, reset, msg)
	} else {
		_ = w.Errorln("taskreport: %s", msg)
	}
}

// WarningSimple prints a warning message to stderr.
func (w *Writer) WarningSimple(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		_ = w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		_ = w.Errorln("warning: %s", msg)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		_ = w.Println("%s%s%s", dim, msg, reset)
	} else {
		_ = w.Println("%s", msg)
	}
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, fmt.Sprintf("%-*s", widths[i], h))
	}
	w.printRow(headerParts)

	var sepParts []string
	for _, width := range widths {
		sepParts = append(sepParts, strings.Repeat("-", width))
	}
	w.printRow(sepParts)

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		w.printRow(rowParts)
	}
}

func (w *Writer) printRow(parts []string) {
	_ = w.Println("%s", strings.TrimRight(strings.Join(parts, "  "), " "))
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)
