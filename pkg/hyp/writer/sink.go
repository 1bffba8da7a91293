package writer

import (
	"bufio"
	"io"
)

// Sink receives the rendered document one line at a time
type Sink interface {
	WriteLine(line string) error
}

// TextSink writes lines to an io.Writer, newline terminated
type TextSink struct {
	w *bufio.Writer
}

// NewSink creates a buffered text sink. Call Flush when done.
func NewSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

// WriteLine writes one line
func (s *TextSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer
func (s *TextSink) Flush() error {
	return s.w.Flush()
}

// Lines is an in-memory sink
type Lines []string

// WriteLine appends line
func (l *Lines) WriteLine(line string) error {
	*l = append(*l, line)
	return nil
}
