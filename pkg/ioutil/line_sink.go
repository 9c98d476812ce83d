// Package ioutil holds the output-side plumbing for generated text.
package ioutil

import (
	"io"
)

// LineSink accepts zero or more lines of text, in order. Implementations do
// not acknowledge lines or apply backpressure; a non-nil error aborts the
// caller's run.
type LineSink interface {
	WriteLine(line string) error
}

type writerSink struct {
	out io.Writer
}

// NewWriterSink adapts an io.Writer into a LineSink, terminating each line
// with a newline.
func NewWriterSink(out io.Writer) LineSink {
	return &writerSink{out: out}
}

func (s *writerSink) WriteLine(line string) error {
	_, err := io.WriteString(s.out, line+"\n")
	return err
}
