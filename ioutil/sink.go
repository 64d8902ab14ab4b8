// Package ioutil provides the line-oriented output sink consumed by the
// molfile saver: a small printf-style wrapper over io.Writer with an
// explicit CR-terminated line primitive.
package ioutil

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Sink is a line-oriented byte sink. It buffers nothing itself; every call
// is forwarded straight to the underlying io.Writer, and CR means "\n" as
// produced by Go's io.Writer convention (the teacher's writeLine helper
// does the same: fmt.Fprintf(w, "%s\n", line)).
type Sink struct {
	w   io.Writer
	err error
}

// NewSink wraps w. The returned Sink is valid for exactly one save call.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Err returns the first write error encountered, if any. Every other method
// on Sink is a no-op once Err() is non-nil, so callers can issue a chain of
// writes and check the error once at the end.
func (s *Sink) Err() error {
	return s.err
}

func (s *Sink) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Write writes raw bytes with no terminator.
func (s *Sink) Write(p []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.w.Write(p); err != nil {
		s.fail(errors.Wrap(err, "ioutil: write"))
	}
}

// WriteChar writes a single byte.
func (s *Sink) WriteChar(c byte) {
	s.Write([]byte{c})
}

// WriteCR writes a line terminator only.
func (s *Sink) WriteCR() {
	s.WriteChar('\n')
}

// WriteString writes a string with no terminator.
func (s *Sink) WriteString(str string) {
	s.Write([]byte(str))
}

// WriteStringCR writes a string followed by a line terminator.
func (s *Sink) WriteStringCR(str string) {
	s.WriteString(str)
	s.WriteCR()
}

// Printf writes a C-style formatted string with no terminator.
func (s *Sink) Printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.fail(errors.Wrap(err, "ioutil: printf"))
	}
}

// PrintfCR writes a formatted string followed by a line terminator.
func (s *Sink) PrintfCR(format string, args ...interface{}) {
	s.Printf(format, args...)
	s.WriteCR()
}
