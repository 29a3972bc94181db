package parser

import (
	"fmt"
	"io"
)

// Tracer receives one line per parsing step. It replaces ad hoc debug
// printing and is off unless a Parser is given one with WithTracer.
type Tracer interface {
	Tracef(format string, args ...any)
}

// NopTracer discards everything
type NopTracer struct{}

func (NopTracer) Tracef(string, ...any) {}

// WriterTracer writes trace lines to an io.Writer
type WriterTracer struct {
	w      io.Writer
	prefix string
}

// NewWriterTracer creates a tracer writing "[parse] ..." lines to w
func NewWriterTracer(w io.Writer) *WriterTracer {
	return &WriterTracer{w: w, prefix: "[parse] "}
}

func (t *WriterTracer) Tracef(format string, args ...any) {
	fmt.Fprintf(t.w, t.prefix+format+"\n", args...)
}
