package ini

import (
	"bytes"
	"io"
)

// Encoder writes an INI document to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
//
// Functional options configure the emitted text, for example
// LineSeparator, CommentPrefix or SpaceAroundEquals.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text form of doc to the stream.
//
// The untitled section's body is emitted first without a header, then each
// named section in document order as a [name] line followed by its body.
// Every emitted line ends with the configured separator; no blank line is
// appended after the last one.
func (e *Encoder) Encode(doc *Document) error {
	o, err := buildOptions(e.opts)
	if err != nil {
		return err
	}
	return newFormatter(e.w, &o).format(doc)
}

// Marshal returns the text form of doc. It is shorthand for NewEncoder
// over an in-memory buffer.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
