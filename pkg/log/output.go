package log

import (
	"io"
	"os"
)

// ConsoleOutput writes formatted entries to stderr.
type ConsoleOutput struct{}

// NewConsoleOutput returns an Output that writes to stderr.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{} }

func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	_, err := os.Stderr.Write(formatted)
	return err
}

func (o *ConsoleOutput) Close() error { return nil }

// WriterOutput writes formatted entries to an arbitrary io.Writer.
type WriterOutput struct{ w io.Writer }

// NewWriterOutput wraps w.
func NewWriterOutput(w io.Writer) *WriterOutput { return &WriterOutput{w: w} }

func (o *WriterOutput) Write(_ *Entry, formatted []byte) error {
	_, err := o.w.Write(formatted)
	return err
}

func (o *WriterOutput) Close() error {
	if c, ok := o.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NullOutput discards everything.
type NullOutput struct{}

func (NullOutput) Write(*Entry, []byte) error { return nil }
func (NullOutput) Close() error               { return nil }
