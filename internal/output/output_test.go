package output

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriterBuffersNonTerminalStreams(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	if err := w.WriteString("hello"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("pipe writes should stay buffered until Flush, got %q", buf.String())
	}

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("flushed content mismatch: got %q", buf.String())
	}
}

func TestWriterFlushesEachWriteOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{w: bufio.NewWriter(&buf), tty: true}

	if err := w.WriteString("hello"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("terminal writes should be delivered immediately, got %q", buf.String())
	}
}
