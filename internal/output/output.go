// Package output writes games as PGN or JSON.
//
// Writers consume a Record, so any game representation that can list its
// tags, its moves in SAN and its result can be exported.
package output

import (
	"fmt"
	"io"
)

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are dropped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 79
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or, when the token and its
// space would pass the line limit, by a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteLine writes s followed by a newline, outside of line wrapping.
func (o *OutputWriter) WriteLine(s string) {
	if o.lineLength > 0 {
		o.NewLine()
	}
	o.print(s)
	o.NewLine()
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error from the underlying writer.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
