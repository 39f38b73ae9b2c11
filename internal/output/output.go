// Package output is the single write-text capability the commands print
// through. The GLB core never touches an output stream itself.
package output

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Writer owns one text destination. Writes to an interactive terminal are
// delivered immediately; writes to a pipe are buffered until Flush, so
// diff output reaches downstream consumers in large chunks.
type Writer struct {
	w   *bufio.Writer
	tty bool
}

// Stdout returns a Writer over the process's standard output, selecting
// the write mode by whether it is an interactive terminal.
func Stdout() *Writer {
	return &Writer{
		w:   bufio.NewWriter(os.Stdout),
		tty: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// New returns a Writer over w, treated as a non-terminal stream. Tests
// use this to capture command output.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteString writes s verbatim; no newline is appended. On a terminal
// the text is flushed through immediately.
func (w *Writer) WriteString(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	if w.tty {
		return w.w.Flush()
	}
	return nil
}

// Flush forces any buffered text out to the destination.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
